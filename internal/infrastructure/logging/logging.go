// Package logging builds the process-wide slog logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lllypuk/talentnet/internal/config"
)

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
// Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New creates a logger writing to w. Format "text" selects the text handler,
// anything else JSON. Every record carries the service attribute.
func New(w io.Writer, cfg config.LogConfig, service string, addSource bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: addSource,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", service))
}

// Setup builds the stdout logger for a binary and installs it as slog.Default.
// Source locations are added in development.
func Setup(cfg *config.Config, service string) *slog.Logger {
	logger := New(os.Stdout, cfg.Log, service, cfg.IsDevelopment())
	slog.SetDefault(logger)
	return logger
}
