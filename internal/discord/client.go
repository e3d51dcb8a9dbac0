package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/PhelGc/impactlens-eval/internal/pipeline"
)

// Colores de los embeds según el resultado
const (
	colorScored = 0x2ECC71 // Verde
	colorFailed = 0xE74C3C // Rojo
)

// maxFieldLength límite de Discord para el valor de un campo de embed
const maxFieldLength = 1024

// messageSender la parte de la sesión de discordgo que usa el notificador
type messageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Client struct {
	session   *discordgo.Session
	sender    messageSender
	channelID string
	now       func() time.Time
}

type Config struct {
	BotToken  string
	ChannelID string
}

// NewClient crea el notificador; no abre el websocket, solo usa la API REST
func NewClient(config *Config) (*Client, error) {
	session, err := discordgo.New("Bot " + config.BotToken)
	if err != nil {
		return nil, fmt.Errorf("error creando sesión Discord: %w", err)
	}

	return &Client{
		session:   session,
		sender:    session,
		channelID: config.ChannelID,
		now:       time.Now,
	}, nil
}

// Notify envía el resultado de un ticket al canal configurado
func (c *Client) Notify(ctx context.Context, runName string, outcome pipeline.Outcome) error {
	embed := c.buildOutcomeEmbed(runName, outcome)

	if _, err := c.sender.ChannelMessageSendEmbed(c.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("error enviando mensaje a Discord: %w", err)
	}

	return nil
}

// buildOutcomeEmbed construye el embed con el puntaje o el error del ticket
func (c *Client) buildOutcomeEmbed(runName string, outcome pipeline.Outcome) *discordgo.MessageEmbed {
	color := colorScored
	field := &discordgo.MessageEmbedField{Name: "Evaluation Score", Value: truncate(outcome.Score.String())}
	if outcome.Err != nil {
		color = colorFailed
		field = &discordgo.MessageEmbedField{Name: "Error", Value: truncate(outcome.Err.Error())}
	}
	if field.Value == "" {
		field.Value = "-"
	}

	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Ticket %s", outcome.TicketID),
		Color:     color,
		Fields:    []*discordgo.MessageEmbedField{field},
		Timestamp: c.now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: runName,
		},
	}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxFieldLength {
		return s
	}
	return string(runes[:maxFieldLength-3]) + "..."
}

// Close cierra la conexión con Discord
func (c *Client) Close() {
	if c.session != nil {
		c.session.Close()
	}
}
