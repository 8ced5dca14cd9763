package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/saudaghar/marketplace-backend/internal/config"
)

// NewLogger creates a *slog.Logger based on the provided LogConfig
// and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces colored human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Output is always os.Stderr. Extra handlers (the Fluent Bit sink) receive
// every record the primary handler accepts.
func NewLogger(cfg config.LogConfig, extra ...slog.Handler) *slog.Logger {
	handler := newHandler(cfg, os.Stderr)
	if len(extra) > 0 {
		handler = fanout(append([]slog.Handler{handler}, extra...))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func newHandler(cfg config.LogConfig, w io.Writer) slog.Handler {
	level := parseLevel(cfg.Level)

	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		AddSource:  true,
		TimeFormat: time.DateTime,
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout dispatches each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
