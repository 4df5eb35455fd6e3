// Package eventbus delivers domain events to subscribers, either over Redis
// Pub/Sub or in process.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/lllypuk/talentnet/internal/domain/event"
)

const defaultChannelPrefix = "events:"

// EventHandler is a function that handles domain events.
type EventHandler func(ctx context.Context, event event.DomainEvent) error

// RedisEventBus publishes events on one Redis channel per event type and
// dispatches received events to the handlers of that type. Each handler runs
// in its own goroutine with retries; handlers that still fail go to the dead
// letter queue when one is configured.
type RedisEventBus struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker

	mu       sync.RWMutex
	handlers map[string][]EventHandler
	pubsub   *redis.PubSub

	running  atomic.Bool
	shutdown chan struct{}
	inflight sync.WaitGroup

	logger        *slog.Logger
	retryConfig   RetryConfig
	breakerConfig BreakerConfig
	deadLetter    *DeadLetterHandler
	channelPrefix string
}

// Option configures a RedisEventBus.
type Option func(*RedisEventBus)

// WithLogger sets the logger for the event bus.
func WithLogger(logger *slog.Logger) Option {
	return func(b *RedisEventBus) {
		b.logger = logger
	}
}

// WithRetryConfig sets the retry configuration for event handling.
func WithRetryConfig(config RetryConfig) Option {
	return func(b *RedisEventBus) {
		b.retryConfig = config
	}
}

// WithBreakerConfig sets the circuit breaker configuration for publishing.
func WithBreakerConfig(config BreakerConfig) Option {
	return func(b *RedisEventBus) {
		b.breakerConfig = config
	}
}

// WithChannelPrefix sets a prefix for Redis channel names.
func WithChannelPrefix(prefix string) Option {
	return func(b *RedisEventBus) {
		b.channelPrefix = prefix
	}
}

// WithDeadLetter stores events whose handlers failed after all retries.
func WithDeadLetter(h *DeadLetterHandler) Option {
	return func(b *RedisEventBus) {
		b.deadLetter = h
	}
}

// NewRedisEventBus creates a new Redis-based event bus.
func NewRedisEventBus(client *redis.Client, opts ...Option) *RedisEventBus {
	b := &RedisEventBus{
		client:        client,
		handlers:      make(map[string][]EventHandler),
		shutdown:      make(chan struct{}),
		logger:        slog.Default(),
		retryConfig:   DefaultRetryConfig(),
		breakerConfig: DefaultBreakerConfig(),
		channelPrefix: defaultChannelPrefix,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.breaker = newBreaker(b.breakerConfig, b.logger)
	return b
}

// Publish sends evt to the channel of its type. It fails fast with
// ErrBreakerOpen while the breaker is open.
func (b *RedisEventBus) Publish(ctx context.Context, evt event.DomainEvent) error {
	if evt == nil {
		return errors.New("event cannot be nil")
	}

	id, data, err := encodeEvent(evt)
	if err != nil {
		return err
	}
	channel := b.channelPrefix + evt.EventType()

	_, err = b.breaker.Execute(func() (any, error) {
		return nil, b.client.Publish(ctx, channel, data).Err()
	})
	switch {
	case rejectedByBreaker(err):
		return fmt.Errorf("%w: %s", ErrBreakerOpen, evt.EventType())
	case err != nil:
		return fmt.Errorf("publish %s to %s: %w", evt.EventType(), channel, err)
	}

	b.logger.DebugContext(ctx, "event published",
		slog.String("event_id", id),
		slog.String("event_type", evt.EventType()),
		slog.String("aggregate_id", evt.AggregateID()),
		slog.String("channel", channel),
	)
	return nil
}

// BreakerState returns the current circuit breaker state.
func (b *RedisEventBus) BreakerState() gobreaker.State {
	return b.breaker.State()
}

// Subscribe registers a handler for eventType. Subscriptions made after
// Start are not picked up until the next Start.
func (b *RedisEventBus) Subscribe(eventType string, handler EventHandler) error {
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
func (b *RedisEventBus) HandlerCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

// IsRunning returns true between Start and Shutdown.
func (b *RedisEventBus) IsRunning() bool {
	return b.running.Load()
}

// Start subscribes to the channels of every registered event type and
// dispatches messages until ctx is cancelled or Shutdown is called.
func (b *RedisEventBus) Start(ctx context.Context) error {
	if !b.running.CompareAndSwap(false, true) {
		return errors.New("event bus is already running")
	}

	channels := b.channels()
	if len(channels) == 0 {
		b.logger.WarnContext(ctx, "starting event bus with no subscriptions")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.shutdown:
			return nil
		}
	}

	pubsub := b.client.Subscribe(ctx, channels...)
	// первый ответ Redis подтверждает подписку
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("subscribe to %d channels: %w", len(channels), err)
	}

	b.mu.Lock()
	b.pubsub = pubsub
	b.mu.Unlock()

	b.logger.InfoContext(ctx, "event bus started", slog.Any("channels", channels))

	return b.listen(ctx, pubsub.Channel())
}

func (b *RedisEventBus) listen(ctx context.Context, messages <-chan *redis.Message) error {
	for {
		select {
		case <-ctx.Done():
			b.logger.InfoContext(ctx, "event bus stopping", slog.String("reason", "context cancelled"))
			return ctx.Err()
		case <-b.shutdown:
			b.logger.InfoContext(ctx, "event bus stopping", slog.String("reason", "shutdown"))
			return nil
		case msg, ok := <-messages:
			if !ok {
				b.logger.WarnContext(ctx, "message channel closed")
				return nil
			}
			b.dispatch(ctx, msg)
		}
	}
}

// Shutdown stops the listener, waits for running handlers and closes the
// subscription. It is a no-op when the bus is not running.
func (b *RedisEventBus) Shutdown() error {
	if !b.running.CompareAndSwap(true, false) {
		return nil
	}
	close(b.shutdown)
	b.inflight.Wait()

	b.mu.Lock()
	pubsub := b.pubsub
	b.pubsub = nil
	b.mu.Unlock()

	if pubsub == nil {
		return nil
	}
	if err := pubsub.Close(); err != nil {
		return fmt.Errorf("close pubsub: %w", err)
	}
	return nil
}

// channels returns the Redis channels of all subscribed event types, sorted.
func (b *RedisEventBus) channels() []string {
	b.mu.RLock()
	types := slices.Sorted(maps.Keys(b.handlers))
	b.mu.RUnlock()

	channels := make([]string, len(types))
	for i, t := range types {
		channels[i] = b.channelPrefix + t
	}
	return channels
}

func (b *RedisEventBus) dispatch(ctx context.Context, msg *redis.Message) {
	evt, err := decodeEvent(msg.Payload)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to decode event",
			slog.String("channel", msg.Channel),
			slog.String("error", err.Error()),
		)
		return
	}

	b.mu.RLock()
	handlers := slices.Clone(b.handlers[evt.EventType()])
	b.mu.RUnlock()

	for i, handler := range handlers {
		b.inflight.Add(1)
		go func() {
			defer b.inflight.Done()
			b.runHandler(ctx, handler, evt, i)
		}()
	}
}

func (b *RedisEventBus) runHandler(ctx context.Context, handler EventHandler, evt *receivedEvent, index int) {
	err := deliver(ctx, b.logger, b.retryConfig, handler, evt, index)
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		b.logger.WarnContext(ctx, "event handler interrupted",
			slog.String("event_id", evt.EventID()),
			slog.String("event_type", evt.EventType()),
			slog.Int("handler_index", index),
		)
		return
	}

	b.logger.ErrorContext(ctx, "event handler failed after all retries",
		slog.String("event_id", evt.EventID()),
		slog.String("event_type", evt.EventType()),
		slog.String("aggregate_id", evt.AggregateID()),
		slog.Int("handler_index", index),
		slog.Int("max_retries", b.retryConfig.MaxRetries),
		slog.String("error", err.Error()),
	)
	if b.deadLetter != nil {
		b.deadLetter.Handle(ctx, evt, err)
	}
}

var (
	_ event.Bus  = (*RedisEventBus)(nil)
	_ Subscriber = (*RedisEventBus)(nil)
)
