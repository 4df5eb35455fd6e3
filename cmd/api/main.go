// Package main provides the API server entry point.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lllypuk/talentnet/internal/config"
	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
	"github.com/lllypuk/talentnet/internal/infrastructure/logging"
)

// gracefulShutdownSleep gives event handlers a moment after cancellation.
const gracefulShutdownSleep = 100 * time.Millisecond

func main() {
	if err := run(); err != nil {
		//nolint:sloglint // logger may not exist yet
		slog.Error("api server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg, cfg.App.Name)
	logger.Info("starting talentnet API server",
		slog.String("version", "0.1.0"),
		slog.String("environment", cfg.EnvironmentName()),
		slog.String("mode", string(cfg.App.Mode)),
	)

	container, err := NewContainer(cfg, WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = container.StartEventBus(ctx); err != nil {
		_ = container.Close()
		return err
	}

	server, _ := SetupRoutes(container)

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err = <-serverErr:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}

	stop()
	shutdown(server, container, logger)
	return err
}

// shutdown stops accepting requests, lets background handlers finish and
// releases the container.
func shutdown(server *httpserver.Server, container *Container, logger *slog.Logger) {
	ctx := context.Background()

	// Server applies its own shutdown timeout
	if err := server.Shutdown(ctx); err != nil {
		logger.ErrorContext(ctx, "server shutdown error", slog.String("error", err.Error()))
	}

	time.Sleep(gracefulShutdownSleep)

	if err := container.Close(); err != nil {
		logger.ErrorContext(ctx, "container close error", slog.String("error", err.Error()))
	}

	logger.InfoContext(ctx, "server shutdown complete")
}
