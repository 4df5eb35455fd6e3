package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lllypuk/talentnet/internal/domain/event"
)

// Publish outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// EventMetrics contains Prometheus metrics for domain event publishing.
type EventMetrics struct {
	EventsPublished *prometheus.CounterVec
	PublishDuration *prometheus.HistogramVec
}

// NewEventMetrics creates and registers event metrics with the given registerer.
func NewEventMetrics(registerer prometheus.Registerer) *EventMetrics {
	metrics := &EventMetrics{
		EventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talentnet_events_published_total",
				Help: "Total number of published domain events",
			},
			[]string{"event_type", "status"}, // status: success/failed
		),
		PublishDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "talentnet_event_publish_duration_seconds",
				Help:    "Time to hand a domain event to the event bus",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"event_type"},
		),
	}

	registerer.MustRegister(
		metrics.EventsPublished,
		metrics.PublishDuration,
	)

	return metrics
}

// InstrumentedBus decorates an event.Bus with publish metrics.
type InstrumentedBus struct {
	next    event.Bus
	metrics *EventMetrics
}

// NewInstrumentedBus wraps next.
func NewInstrumentedBus(next event.Bus, metrics *EventMetrics) *InstrumentedBus {
	return &InstrumentedBus{next: next, metrics: metrics}
}

// Publish forwards evt to the wrapped bus and records the outcome.
func (b *InstrumentedBus) Publish(ctx context.Context, evt event.DomainEvent) error {
	if evt == nil {
		return b.next.Publish(ctx, evt)
	}

	start := time.Now()
	err := b.next.Publish(ctx, evt)
	b.metrics.PublishDuration.WithLabelValues(evt.EventType()).Observe(time.Since(start).Seconds())

	status := StatusSuccess
	if err != nil {
		status = StatusFailed
	}
	b.metrics.EventsPublished.WithLabelValues(evt.EventType(), status).Inc()

	return err
}

var _ event.Bus = (*InstrumentedBus)(nil)
