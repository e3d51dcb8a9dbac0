// Package app arma las dependencias compartidas por los dos comandos de evaluación.
package app

import (
	"context"
	"io"

	"github.com/chainguard-dev/clog"

	"github.com/PhelGc/impactlens-eval/internal/config"
	"github.com/PhelGc/impactlens-eval/internal/discord"
	"github.com/PhelGc/impactlens-eval/internal/evaluator"
	"github.com/PhelGc/impactlens-eval/internal/pipeline"
)

// Run construye el cliente de evaluación (y el notificador de Discord si está
// configurado) y recorre los fixtures con la variante indicada.
func Run(ctx context.Context, cfg *config.Config, variant pipeline.Variant, producer pipeline.Producer, fixtures []pipeline.Fixture, out io.Writer) pipeline.Summary {
	log := clog.FromContext(ctx)

	if cfg.LangSmith.APIKey == "" {
		log.Warn("LANGCHAIN_API_KEY no configurada; el servicio de evaluación rechazará los runs")
	}
	scorer := evaluator.NewClient(cfg.LangSmith.Endpoint, cfg.LangSmith.APIKey, cfg.HTTPTimeout)

	var notifier pipeline.Notifier
	if cfg.DiscordEnabled() {
		dc, err := discord.NewClient(&discord.Config{
			BotToken:  cfg.Discord.BotToken,
			ChannelID: cfg.Discord.ChannelID,
		})
		if err != nil {
			log.Warnf("notificaciones de Discord desactivadas: %v", err)
		} else {
			defer dc.Close()
			notifier = dc
		}
	}

	log.Infof("Evaluando %d tickets (%s)", len(fixtures), variant.Run.Name)

	summary := pipeline.NewRunner(variant, producer, scorer, notifier, out).Run(ctx, fixtures)

	log.Infof("Evaluación completada. %d puntuados, %d con error", summary.Scored, summary.Failed)
	return summary
}
