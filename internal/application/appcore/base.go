package appcore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lllypuk/talentnet/internal/domain/event"
)

// Option configures the collaborators shared by use cases
type Option func(*BaseUseCase)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(b *BaseUseCase) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithEventBus sets the bus domain events are published to after a successful write
func WithEventBus(bus event.Bus) Option {
	return func(b *BaseUseCase) {
		b.bus = bus
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(b *BaseUseCase) {
		if now != nil {
			b.now = now
		}
	}
}

// BaseUseCase contains common functionality for all use cases
type BaseUseCase struct {
	logger *slog.Logger
	bus    event.Bus
	now    func() time.Time
}

// NewBaseUseCase applies opts over the defaults: slog.Default, no bus, time.Now.
func NewBaseUseCase(opts ...Option) BaseUseCase {
	b := BaseUseCase{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Logger returns the configured logger
func (b *BaseUseCase) Logger() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}
	return b.logger
}

// Now returns the current time in UTC
func (b *BaseUseCase) Now() time.Time {
	if b.now == nil {
		return time.Now().UTC()
	}
	return b.now().UTC()
}

// Publish sends events to the bus. Failures are logged and not returned:
// the write they describe has already been committed.
func (b *BaseUseCase) Publish(ctx context.Context, events ...event.DomainEvent) {
	if b.bus == nil {
		return
	}
	for _, evt := range events {
		if err := b.bus.Publish(ctx, evt); err != nil {
			b.Logger().WarnContext(ctx, "failed to publish domain event",
				slog.String("event_type", evt.EventType()),
				slog.String("aggregate_id", evt.AggregateID()),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Metadata builds event metadata for the acting user and the request correlation id
func (b *BaseUseCase) Metadata(ctx context.Context, actorID string) event.Metadata {
	return event.Metadata{
		ActorID:       actorID,
		CorrelationID: CorrelationID(ctx),
		Timestamp:     b.Now(),
	}
}

// WrapError wraps an error with context
func (b *BaseUseCase) WrapError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// ValidateContext checks that the context has not been canceled
func (b *BaseUseCase) ValidateContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
