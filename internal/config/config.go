package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config contiene toda la configuración de las herramientas de evaluación
type Config struct {
	LangSmith LangSmithConfig
	Analysis  AnalysisConfig
	Fixtures  FixturesConfig
	Discord   DiscordConfig
	Log       LogConfig

	// HTTPTimeout aplica a ambos clientes HTTP; 0 significa sin timeout
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=0s"`
}

// LangSmithConfig configuración del servicio de evaluación
type LangSmithConfig struct {
	APIKey         string `env:"LANGCHAIN_API_KEY"`
	FallbackAPIKey string `env:"LANGSMITH_API_KEY"`
	Endpoint       string `env:"LANGCHAIN_ENDPOINT, default=https://api.smith.langchain.com"`
}

// AnalysisConfig configuración del API de análisis (solo variante en vivo)
type AnalysisConfig struct {
	BaseURL string `env:"ANALYSIS_API_URL, default=http://localhost:8080"`
}

// FixturesConfig rutas a los archivos de prueba
type FixturesConfig struct {
	TicketsPath       string `env:"TEST_TICKETS_PATH, default=test_tickets.json"`
	MockResponsesPath string `env:"MOCK_RESPONSES_PATH, default=mock_responses.json"`
}

// DiscordConfig configuración opcional del notificador de Discord
type DiscordConfig struct {
	BotToken  string `env:"DISCORD_BOT_TOKEN"`
	ChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// LogConfig nivel de log (debug, info, warn, error)
type LogConfig struct {
	Level string `env:"LOG_LEVEL, default=info"`
}

// Load carga la configuración desde variables de entorno
func Load(ctx context.Context) (*Config, error) {
	// Cargar archivo .env si existe
	godotenv.Load()

	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("error procesando configuración: %w", err)
	}

	if cfg.LangSmith.APIKey == "" {
		cfg.LangSmith.APIKey = cfg.LangSmith.FallbackAPIKey
	}
	cfg.LangSmith.Endpoint = strings.TrimRight(cfg.LangSmith.Endpoint, "/")
	cfg.Analysis.BaseURL = strings.TrimRight(cfg.Analysis.BaseURL, "/")

	if cfg.HTTPTimeout < 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT no puede ser negativo: %s", cfg.HTTPTimeout)
	}

	return &cfg, nil
}

// DiscordEnabled indica si hay credenciales suficientes para notificar por Discord
func (c *Config) DiscordEnabled() bool {
	return c.Discord.BotToken != "" && c.Discord.ChannelID != ""
}
