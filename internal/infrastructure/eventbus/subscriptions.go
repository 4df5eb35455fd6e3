package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/skill"
)

const maxPayloadLogLength = 500

// Subscriber registers handlers by event type. Both buses implement it.
type Subscriber interface {
	Subscribe(eventType string, handler EventHandler) error
}

// DomainEventTypes lists every event type the service publishes.
// Redis Pub/Sub has no wildcard subscription, so handlers register per type.
func DomainEventTypes() []string {
	return []string{
		follow.EventTypeCreated,
		follow.EventTypeRemoved,
		mentorship.EventTypeRequested,
		mentorship.EventTypeAccepted,
		mentorship.EventTypeRejected,
		skill.EventTypeOffered,
		skill.EventTypeAcquired,
	}
}

// RegisterForAll subscribes handler to every type from DomainEventTypes.
func RegisterForAll(sub Subscriber, handler EventHandler) error {
	for _, eventType := range DomainEventTypes() {
		if err := sub.Subscribe(eventType, handler); err != nil {
			return fmt.Errorf("subscribe to %s: %w", eventType, err)
		}
	}
	return nil
}

// LoggingHandler writes one audit log line per event.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a new LoggingHandler.
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingHandler{logger: logger}
}

// Handle logs the event. It never fails.
func (h *LoggingHandler) Handle(ctx context.Context, evt event.DomainEvent) error {
	attrs := []any{
		slog.String("event_type", evt.EventType()),
		slog.String("aggregate_type", evt.AggregateType()),
		slog.String("aggregate_id", evt.AggregateID()),
		slog.Time("occurred_at", evt.OccurredAt()),
	}

	md := evt.Metadata()
	var mdAttrs []any
	if md.ActorID != "" {
		mdAttrs = append(mdAttrs, slog.String("actor_id", md.ActorID))
	}
	if md.CorrelationID != "" {
		mdAttrs = append(mdAttrs, slog.String("correlation_id", md.CorrelationID))
	}
	if len(mdAttrs) > 0 {
		attrs = append(attrs, slog.Group("metadata", mdAttrs...))
	}

	if pe, ok := evt.(PayloadEvent); ok {
		attrs = append(attrs,
			slog.String("event_id", pe.EventID()),
			slog.String("payload", truncate(string(pe.Payload()), maxPayloadLogLength)),
		)
	}

	h.logger.InfoContext(ctx, "domain event", attrs...)
	return nil
}

// AsEventHandler converts LoggingHandler to EventHandler function type.
func (h *LoggingHandler) AsEventHandler() EventHandler {
	return h.Handle
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
