package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/lllypuk/talentnet/internal/domain/event"
)

// InMemoryEventBus delivers events to subscribed handlers synchronously, in
// subscription order. Handler failures are retried and then logged; they never
// fail Publish. Used in mock mode and in tests.
type InMemoryEventBus struct {
	mu          sync.RWMutex
	handlers    map[string][]EventHandler
	logger      *slog.Logger
	retryConfig RetryConfig
}

// InMemoryOption configures an InMemoryEventBus.
type InMemoryOption func(*InMemoryEventBus)

// WithInMemoryLogger sets the logger.
func WithInMemoryLogger(logger *slog.Logger) InMemoryOption {
	return func(b *InMemoryEventBus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithInMemoryRetry sets the retry configuration for handlers.
func WithInMemoryRetry(config RetryConfig) InMemoryOption {
	return func(b *InMemoryEventBus) {
		b.retryConfig = config
	}
}

// NewInMemoryEventBus creates a new in-process event bus. Handlers are not retried by default.
func NewInMemoryEventBus(opts ...InMemoryOption) *InMemoryEventBus {
	b := &InMemoryEventBus{
		handlers: make(map[string][]EventHandler),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish delivers evt to every handler registered for its type.
func (b *InMemoryEventBus) Publish(ctx context.Context, evt event.DomainEvent) error {
	if evt == nil {
		return errors.New("event cannot be nil")
	}

	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.handlers[evt.EventType()]...)
	b.mu.RUnlock()

	for i, handler := range handlers {
		if err := deliver(ctx, b.logger, b.retryConfig, handler, evt, i); err != nil {
			b.logger.ErrorContext(ctx, "event handler failed after all retries",
				slog.String("event_type", evt.EventType()),
				slog.String("aggregate_id", evt.AggregateID()),
				slog.Int("handler_index", i),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}

// Subscribe registers an event handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return errors.New("event type cannot be empty")
	}
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// HandlerCount returns the number of handlers registered for an event type.
func (b *InMemoryEventBus) HandlerCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

var (
	_ event.Bus  = (*InMemoryEventBus)(nil)
	_ Subscriber = (*InMemoryEventBus)(nil)
)
