// Comando evaluate-output: envía cada ticket de prueba al API de análisis y
// puntúa el resultado con el servicio de evaluación.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"

	"github.com/PhelGc/impactlens-eval/internal/analysis"
	"github.com/PhelGc/impactlens-eval/internal/app"
	"github.com/PhelGc/impactlens-eval/internal/config"
	"github.com/PhelGc/impactlens-eval/internal/fixtures"
	"github.com/PhelGc/impactlens-eval/internal/logging"
	"github.com/PhelGc/impactlens-eval/internal/pipeline"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Cargar configuración
	cfg, err := config.Load(ctx)
	if err != nil {
		clog.FatalContextf(ctx, "Error cargando configuración: %v", err)
	}
	ctx = logging.WithLogger(ctx, os.Stderr, cfg.Log.Level)

	// Cargar tickets de prueba; un archivo ausente o inválido aborta antes de evaluar
	tickets, err := fixtures.LoadTickets(cfg.Fixtures.TicketsPath)
	if err != nil {
		clog.FatalContextf(ctx, "Error cargando tickets: %v", err)
	}

	producer := pipeline.LiveProducer{
		Analyzer: analysis.NewClient(cfg.Analysis.BaseURL, cfg.HTTPTimeout),
	}

	app.Run(ctx, cfg, pipeline.Live(), producer, pipeline.FromTickets(tickets), os.Stdout)
}
