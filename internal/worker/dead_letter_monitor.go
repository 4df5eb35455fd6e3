package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/lllypuk/talentnet/internal/infrastructure/metrics"
)

// Default dead letter monitor configuration values.
const (
	defaultDeadLetterPollInterval = 30 * time.Second
	defaultDeadLetterThreshold    = 100
)

// DeadLetterQueue is the part of eventbus.DeadLetterHandler the monitor needs.
type DeadLetterQueue interface {
	QueueLength(ctx context.Context) (int64, error)
}

// DeadLetterMonitorConfig contains configuration for the dead letter monitor.
type DeadLetterMonitorConfig struct {
	// PollInterval is the time between queue length checks.
	PollInterval time.Duration

	// Threshold is the queue length above which a warning is logged on every poll.
	Threshold int64

	// Enabled determines if the monitor should run.
	Enabled bool
}

// DefaultDeadLetterMonitorConfig returns sensible default configuration.
func DefaultDeadLetterMonitorConfig() DeadLetterMonitorConfig {
	return DeadLetterMonitorConfig{
		PollInterval: defaultDeadLetterPollInterval,
		Threshold:    defaultDeadLetterThreshold,
		Enabled:      true,
	}
}

// DeadLetterMonitor periodically exports the dead letter queue length.
type DeadLetterMonitor struct {
	queue   DeadLetterQueue
	logger  *slog.Logger
	config  DeadLetterMonitorConfig
	metrics *metrics.WorkerMetrics
}

// NewDeadLetterMonitor creates a new dead letter monitor.
func NewDeadLetterMonitor(
	queue DeadLetterQueue,
	logger *slog.Logger,
	config DeadLetterMonitorConfig,
	m *metrics.WorkerMetrics,
) *DeadLetterMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	if config.PollInterval <= 0 {
		config.PollInterval = defaultDeadLetterPollInterval
	}

	return &DeadLetterMonitor{
		queue:   queue,
		logger:  logger,
		config:  config,
		metrics: m,
	}
}

// Run polls the queue until the context is cancelled.
func (w *DeadLetterMonitor) Run(ctx context.Context) error {
	if !w.config.Enabled {
		w.logger.InfoContext(ctx, "dead letter monitor is disabled")
		return nil
	}

	w.logger.InfoContext(ctx, "starting dead letter monitor",
		slog.Duration("poll_interval", w.config.PollInterval),
		slog.Int64("threshold", w.config.Threshold),
	)

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	w.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "dead letter monitor stopped")
			return ctx.Err()
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

// Poll reads the queue length once and returns it; -1 when the read fails.
func (w *DeadLetterMonitor) Poll(ctx context.Context) int64 {
	length, err := w.queue.QueueLength(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "failed to read dead letter queue length",
			slog.String("error", err.Error()),
		)
		w.observe(metrics.StatusFailed, -1)
		return -1
	}

	w.observe(metrics.StatusSuccess, length)
	if length > w.config.Threshold {
		w.logger.WarnContext(ctx, "dead letter queue above threshold",
			slog.Int64("length", length),
			slog.Int64("threshold", w.config.Threshold),
		)
	}
	return length
}

func (w *DeadLetterMonitor) observe(status string, length int64) {
	if w.metrics == nil {
		return
	}
	w.metrics.DeadLetterPolls.WithLabelValues(status).Inc()
	if length >= 0 {
		w.metrics.DeadLetterLength.Set(float64(length))
	}
}
