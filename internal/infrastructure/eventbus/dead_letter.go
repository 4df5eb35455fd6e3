package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lllypuk/talentnet/internal/domain/event"
)

const (
	deadLetterQueueKey    = "events:dead_letter"
	defaultMaxDeadLetters = 1000
	defaultDeadLetterPage = 10
)

// DeadLetterEntry is an event whose handler kept failing.
type DeadLetterEntry struct {
	EventID       string          `json:"event_id,omitempty"`
	EventType     string          `json:"event_type"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	FailedAt      time.Time       `json:"failed_at"`
	Error         string          `json:"error"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// DeadLetterHandler keeps failed events in a capped Redis list, newest first.
type DeadLetterHandler struct {
	client     *redis.Client
	logger     *slog.Logger
	queueKey   string
	maxEntries int64
}

// DeadLetterHandlerOption configures DeadLetterHandler.
type DeadLetterHandlerOption func(*DeadLetterHandler)

// WithDeadLetterQueueKey sets a custom key for the dead letter queue.
func WithDeadLetterQueueKey(key string) DeadLetterHandlerOption {
	return func(h *DeadLetterHandler) {
		h.queueKey = key
	}
}

// WithDeadLetterLogger sets the logger for DeadLetterHandler.
func WithDeadLetterLogger(logger *slog.Logger) DeadLetterHandlerOption {
	return func(h *DeadLetterHandler) {
		h.logger = logger
	}
}

// WithMaxDeadLetters caps the queue; older entries are dropped.
func WithMaxDeadLetters(maxEntries int64) DeadLetterHandlerOption {
	return func(h *DeadLetterHandler) {
		if maxEntries > 0 {
			h.maxEntries = maxEntries
		}
	}
}

// NewDeadLetterHandler creates a new DeadLetterHandler.
func NewDeadLetterHandler(client *redis.Client, opts ...DeadLetterHandlerOption) *DeadLetterHandler {
	h := &DeadLetterHandler{
		client:     client,
		logger:     slog.Default(),
		queueKey:   deadLetterQueueKey,
		maxEntries: defaultMaxDeadLetters,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle stores evt with the error that made its handler give up.
// Storage failures are logged, never returned.
func (h *DeadLetterHandler) Handle(ctx context.Context, evt event.DomainEvent, cause error) {
	entry := DeadLetterEntry{
		EventType:     evt.EventType(),
		AggregateID:   evt.AggregateID(),
		AggregateType: evt.AggregateType(),
		OccurredAt:    evt.OccurredAt(),
		FailedAt:      time.Now().UTC(),
		Error:         cause.Error(),
	}
	if pe, ok := evt.(PayloadEvent); ok {
		entry.EventID = pe.EventID()
		entry.Payload = pe.Payload()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal dead letter entry",
			slog.String("event_type", entry.EventType),
			slog.String("error", err.Error()),
		)
		return
	}

	// push и trim одной транзакцией, чтобы очередь не росла без ограничения
	_, err = h.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, h.queueKey, data)
		pipe.LTrim(ctx, h.queueKey, 0, h.maxEntries-1)
		return nil
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to store dead letter",
			slog.String("event_type", entry.EventType),
			slog.String("error", err.Error()),
		)
		return
	}

	h.logger.ErrorContext(ctx, "event moved to dead letter queue",
		slog.String("event_id", entry.EventID),
		slog.String("event_type", entry.EventType),
		slog.String("aggregate_id", entry.AggregateID),
		slog.String("original_error", entry.Error),
	)
}

// GetDeadLetters returns up to count newest entries; count <= 0 means 10.
// Entries that fail to decode are skipped.
func (h *DeadLetterHandler) GetDeadLetters(ctx context.Context, count int64) ([]DeadLetterEntry, error) {
	if count <= 0 {
		count = defaultDeadLetterPage
	}

	raw, err := h.client.LRange(ctx, h.queueKey, 0, count-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read dead letters: %w", err)
	}

	entries := make([]DeadLetterEntry, 0, len(raw))
	for _, item := range raw {
		var entry DeadLetterEntry
		if err = json.Unmarshal([]byte(item), &entry); err != nil {
			h.logger.WarnContext(ctx, "skipping malformed dead letter entry", slog.String("error", err.Error()))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// QueueLength returns the number of entries in the dead letter queue.
func (h *DeadLetterHandler) QueueLength(ctx context.Context) (int64, error) {
	return h.client.LLen(ctx, h.queueKey).Result()
}
