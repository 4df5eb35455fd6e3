package healthcheck

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"

	"github.com/lllypuk/talentnet/internal/application/appcore"
)

// DeadLetterQueue is the part of eventbus.DeadLetterHandler the checker needs.
type DeadLetterQueue interface {
	QueueLength(ctx context.Context) (int64, error)
}

// DeadLetterChecker reports unhealthy once the dead letter queue grows past a threshold.
type DeadLetterChecker struct {
	queue     DeadLetterQueue
	threshold int64
}

// NewDeadLetterChecker creates a dead letter queue checker. A threshold of zero
// means any dead letter is unhealthy.
func NewDeadLetterChecker(queue DeadLetterQueue, threshold int64) *DeadLetterChecker {
	return &DeadLetterChecker{queue: queue, threshold: threshold}
}

// Name returns the name of this health checker.
func (c *DeadLetterChecker) Name() string { return "dead_letter_queue" }

// Check performs the health check.
func (c *DeadLetterChecker) Check(ctx context.Context) appcore.HealthStatus {
	count, err := c.queue.QueueLength(ctx)
	if err != nil {
		return appcore.Unhealthy(fmt.Sprintf("failed to get dead letter queue length: %v", err), nil)
	}

	details := map[string]any{"dead_letters": count}
	message := fmt.Sprintf("dead letter queue: %d events", count)
	if count > c.threshold {
		return appcore.Unhealthy(message, details)
	}
	return appcore.Healthy(message, details)
}

// BreakerSource exposes the publish circuit breaker state of an event bus.
type BreakerSource interface {
	BreakerState() gobreaker.State
}

// BreakerChecker is healthy unless the publish breaker is open.
type BreakerChecker struct {
	source BreakerSource
}

// NewBreakerChecker creates an event bus breaker checker.
func NewBreakerChecker(source BreakerSource) *BreakerChecker {
	return &BreakerChecker{source: source}
}

// Name returns the name of this health checker.
func (c *BreakerChecker) Name() string { return "eventbus_breaker" }

// Check performs the health check.
func (c *BreakerChecker) Check(_ context.Context) appcore.HealthStatus {
	state := c.source.BreakerState()
	details := map[string]any{"state": state.String()}
	if state == gobreaker.StateOpen {
		return appcore.Unhealthy("event publishing suspended", details)
	}
	return appcore.Healthy("", details)
}
