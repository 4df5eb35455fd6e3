// Package worker contains background processes of the event worker binary.
package worker

import (
	"context"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/infrastructure/eventbus"
	"github.com/lllypuk/talentnet/internal/infrastructure/metrics"
)

// AuditSubscriber writes every consumed domain event to the audit log.
type AuditSubscriber struct {
	logging *eventbus.LoggingHandler
	metrics *metrics.WorkerMetrics
}

// NewAuditSubscriber creates an audit subscriber. metrics may be nil.
func NewAuditSubscriber(logger *slog.Logger, m *metrics.WorkerMetrics) *AuditSubscriber {
	return &AuditSubscriber{logging: eventbus.NewLoggingHandler(logger), metrics: m}
}

// Register subscribes the auditor to every known domain event type.
func (a *AuditSubscriber) Register(sub eventbus.Subscriber) error {
	return eventbus.RegisterForAll(sub, a.Handle)
}

// Handle logs evt and counts it.
func (a *AuditSubscriber) Handle(ctx context.Context, evt event.DomainEvent) error {
	if err := a.logging.Handle(ctx, evt); err != nil {
		return err
	}
	if a.metrics != nil {
		a.metrics.EventsConsumed.WithLabelValues(evt.EventType()).Inc()
	}
	return nil
}
