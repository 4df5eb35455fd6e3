package eventbus

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

const (
	defaultBreakerFailures    = 5
	defaultBreakerOpenTimeout = 30 * time.Second
	defaultBreakerInterval    = time.Minute
	breakerHalfOpenRequests   = 1
)

// ErrBreakerOpen is returned by Publish while Redis is considered unavailable.
var ErrBreakerOpen = errors.New("event bus circuit breaker is open")

// BreakerConfig configures the circuit breaker guarding Publish.
// The breaker opens after ConsecutiveFailures failed publishes in a row
// and lets one probe through after OpenTimeout.
type BreakerConfig struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	Interval            time.Duration
}

// DefaultBreakerConfig returns the default breaker configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		ConsecutiveFailures: defaultBreakerFailures,
		OpenTimeout:         defaultBreakerOpenTimeout,
		Interval:            defaultBreakerInterval,
	}
}

func newBreaker(cfg BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = defaultBreakerFailures
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "redis-eventbus",
		MaxRequests: breakerHalfOpenRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// rejectedByBreaker reports whether err came from the breaker rather than Redis.
func rejectedByBreaker(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
