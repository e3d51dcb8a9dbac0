// Comando evaluate-output-mock: puntúa respuestas de análisis pregrabadas sin
// llamar al backend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"

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

	// Cargar respuestas mock; un archivo ausente o inválido aborta antes de evaluar
	entries, err := fixtures.LoadMockEntries(cfg.Fixtures.MockResponsesPath)
	if err != nil {
		clog.FatalContextf(ctx, "Error cargando respuestas mock: %v", err)
	}

	app.Run(ctx, cfg, pipeline.Mock(), pipeline.MockProducer{}, pipeline.FromMockEntries(entries), os.Stdout)
}
