package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/chainguard-dev/clog"
)

// ParseLevel traduce LOG_LEVEL a un nivel de slog; valores desconocidos usan info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithLogger adjunta al contexto un logger de texto que escribe en w.
// Los logs van separados de la salida de consola de la evaluación.
func WithLogger(ctx context.Context, w io.Writer, level string) context.Context {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return clog.WithLogger(ctx, clog.New(handler))
}
