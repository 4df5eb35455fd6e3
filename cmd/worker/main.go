// Package main provides the worker service entry point.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/lllypuk/talentnet/internal/config"
	"github.com/lllypuk/talentnet/internal/infrastructure/eventbus"
	"github.com/lllypuk/talentnet/internal/infrastructure/healthcheck"
	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
	"github.com/lllypuk/talentnet/internal/infrastructure/logging"
	"github.com/lllypuk/talentnet/internal/infrastructure/metrics"
	"github.com/lllypuk/talentnet/internal/worker"
)

// Timeout constants for worker service.
const (
	redisPingTimeout   = 5 * time.Second
	healthCheckTimeout = 3 * time.Second
)

//nolint:funlen // Main function handles startup orchestration and is readable as-is
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		//nolint:sloglint // No context available before logger setup
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.Setup(cfg, cfg.App.Name+"-worker")

	logger.Info("starting talentnet worker service",
		slog.String("version", "0.1.0"),
		slog.String("environment", cfg.EnvironmentName()),
	)

	// Create a context that will be cancelled on shutdown signal
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			logger.Error("failed to close Redis", slog.String("error", closeErr.Error()))
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, redisPingTimeout)
	if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
		pingCancel()
		logger.Error("failed to connect to Redis", slog.String("error", pingErr.Error()))
		cancel()
		os.Exit(1) //nolint:gocritic // cancel() called before exit
	}
	pingCancel()

	logger.InfoContext(ctx, "connected to Redis", slog.String("addr", cfg.Redis.Addr))

	// Setup metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	workerMetrics := metrics.NewWorkerMetrics(registry)

	// Setup EventBus with the dead letter queue shared with the API
	deadLetters := eventbus.NewDeadLetterHandler(
		redisClient,
		eventbus.WithDeadLetterQueueKey(cfg.EventBus.DeadLetterKey),
		eventbus.WithDeadLetterLogger(logger),
	)
	eventBus := eventbus.NewRedisEventBus(
		redisClient,
		eventbus.WithLogger(logger),
		eventbus.WithChannelPrefix(cfg.EventBus.RedisChannelPrefix),
		eventbus.WithRetryConfig(retryConfig(cfg)),
		eventbus.WithDeadLetter(deadLetters),
	)

	auditor := worker.NewAuditSubscriber(logger, workerMetrics)
	if regErr := auditor.Register(eventBus); regErr != nil {
		logger.Error("failed to register audit subscriber", slog.String("error", regErr.Error()))
		cancel()
		os.Exit(1)
	}

	monitorConfig := deadLetterMonitorConfig(cfg)
	monitor := worker.NewDeadLetterMonitor(deadLetters, logger, monitorConfig, workerMetrics)

	// Small HTTP server for probes and scraping
	server := setupServer(cfg, logger, registry, redisClient, deadLetters)

	logger.Info("starting workers",
		slog.Duration("dead_letter_poll_interval", monitorConfig.PollInterval),
		slog.Int64("dead_letter_threshold", monitorConfig.Threshold),
		slog.String("metrics_address", server.Address()),
	)

	var wg sync.WaitGroup

	// Start event subscriber
	wg.Add(1)
	go func() {
		defer wg.Done()
		if runErr := eventBus.Start(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
			logger.Error("event bus error", slog.String("error", runErr.Error()))
		}
	}()

	// Start dead letter monitor
	wg.Add(1)
	go func() {
		defer wg.Done()
		if runErr := monitor.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
			logger.Error("dead letter monitor error", slog.String("error", runErr.Error()))
		}
	}()

	// Start HTTP server
	wg.Add(1)
	go func() {
		defer wg.Done()
		if runErr := server.Start(); runErr != nil {
			logger.Error("worker http server error", slog.String("error", runErr.Error()))
			cancel()
		}
	}()

	<-ctx.Done()

	if shutdownErr := server.Shutdown(context.Background()); shutdownErr != nil {
		logger.Error("worker http server shutdown error", slog.String("error", shutdownErr.Error()))
	}
	if shutdownErr := eventBus.Shutdown(); shutdownErr != nil {
		logger.Error("event bus shutdown error", slog.String("error", shutdownErr.Error()))
	}

	wg.Wait()

	logger.Info("worker service shutdown complete")
}

// setupServer serves /health, /ready, /health/details and /metrics on the worker port.
func setupServer(
	cfg *config.Config,
	logger *slog.Logger,
	registry *prometheus.Registry,
	redisClient *redis.Client,
	deadLetters *eventbus.DeadLetterHandler,
) *httpserver.Server {
	server := httpserver.NewServer(httpserver.ServerConfigFrom(cfg.Server, cfg.Worker.Port), logger)

	routerConfig := httpserver.DefaultRouterConfig()
	routerConfig.Logger = logger
	routerConfig.LoggingConfig.Logger = logger
	routerConfig.RecoveryConfig.Logger = logger
	router := httpserver.NewRouter(server.Echo(), routerConfig)

	health := healthcheck.NewRegistry(healthCheckTimeout).
		Require(healthcheck.NewRedisChecker(redisClient)).
		Observe(healthcheck.NewDeadLetterChecker(deadLetters, cfg.EventBus.DeadLetterAlert))
	router.RegisterHealthEndpoints(health)
	router.RegisterMetricsEndpoint(registry)

	return server
}

// retryConfig applies the configured handler retries on top of the defaults.
func retryConfig(cfg *config.Config) eventbus.RetryConfig {
	retry := eventbus.DefaultRetryConfig()
	if cfg.EventBus.HandlerRetries > 0 {
		retry.MaxRetries = cfg.EventBus.HandlerRetries
	}
	return retry
}

// deadLetterMonitorConfig maps config onto the monitor. A zero interval keeps the default.
func deadLetterMonitorConfig(cfg *config.Config) worker.DeadLetterMonitorConfig {
	monitorConfig := worker.DefaultDeadLetterMonitorConfig()
	if cfg.Worker.DeadLetterPollInterval > 0 {
		monitorConfig.PollInterval = cfg.Worker.DeadLetterPollInterval
	}
	monitorConfig.Threshold = cfg.EventBus.DeadLetterAlert
	return monitorConfig
}

// handleShutdown listens for OS signals and cancels the context.
func handleShutdown(cancel context.CancelFunc, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-quit
	logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	cancel()
}
