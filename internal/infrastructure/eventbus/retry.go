package eventbus

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/lllypuk/talentnet/internal/domain/event"
)

const (
	defaultMaxRetries     = 3
	defaultInitialBackoff = 100 * time.Millisecond
	defaultMaxBackoff     = 5 * time.Second
	defaultBackoffFactor  = 2.0
)

// RetryConfig controls how often a failing handler is called again.
// The zero value calls every handler exactly once.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	BackoffFactor  float64
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     defaultMaxRetries,
		InitialBackoff: defaultInitialBackoff,
		MaxBackoff:     defaultMaxBackoff,
		BackoffFactor:  defaultBackoffFactor,
	}
}

// delay is the pause before the n-th retry (n starts at 1).
func (c RetryConfig) delay(n int) time.Duration {
	factor := max(c.BackoffFactor, 1)
	d := time.Duration(float64(c.InitialBackoff) * math.Pow(factor, float64(n-1)))
	if c.MaxBackoff > 0 && d > c.MaxBackoff {
		return c.MaxBackoff
	}
	return d
}

// deliver calls handler until it succeeds or retries run out and returns the
// last handler error. A cancelled ctx stops the retries with ctx.Err().
func deliver(
	ctx context.Context,
	logger *slog.Logger,
	cfg RetryConfig,
	handler EventHandler,
	evt event.DomainEvent,
	handlerIndex int,
) error {
	for attempt := 0; ; attempt++ {
		err := handler(ctx, evt)
		if err == nil {
			return nil
		}

		logger.WarnContext(ctx, "event handler failed",
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID()),
			slog.Int("handler_index", handlerIndex),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		if attempt >= cfg.MaxRetries {
			return err
		}

		timer := time.NewTimer(cfg.delay(attempt + 1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
