package metrics

import "github.com/prometheus/client_golang/prometheus"

// WorkerMetrics contains Prometheus metrics for the event worker.
type WorkerMetrics struct {
	EventsConsumed   *prometheus.CounterVec
	DeadLetterLength prometheus.Gauge
	DeadLetterPolls  *prometheus.CounterVec
}

// NewWorkerMetrics creates and registers worker metrics with the given registerer.
func NewWorkerMetrics(registerer prometheus.Registerer) *WorkerMetrics {
	metrics := &WorkerMetrics{
		EventsConsumed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talentnet_events_consumed_total",
				Help: "Total number of domain events consumed by the worker",
			},
			[]string{"event_type"},
		),
		DeadLetterLength: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "talentnet_dead_letter_queue_length",
				Help: "Current number of events in the dead letter queue",
			},
		),
		DeadLetterPolls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talentnet_dead_letter_polls_total",
				Help: "Total number of dead letter queue polls",
			},
			[]string{"status"}, // status: success/failed
		),
	}

	registerer.MustRegister(
		metrics.EventsConsumed,
		metrics.DeadLetterLength,
		metrics.DeadLetterPolls,
	)

	return metrics
}
