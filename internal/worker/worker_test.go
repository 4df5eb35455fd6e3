package worker_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/infrastructure/eventbus"
	"github.com/lllypuk/talentnet/internal/infrastructure/metrics"
	"github.com/lllypuk/talentnet/internal/worker"
)

type stubQueue struct {
	length atomic.Int64
	err    error
}

func (q *stubQueue) QueueLength(_ context.Context) (int64, error) {
	if q.err != nil {
		return 0, q.err
	}
	return q.length.Load(), nil
}

func TestAuditSubscriber_LogsAndCounts(t *testing.T) {
	// Arrange
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	m := metrics.NewWorkerMetrics(prometheus.NewRegistry())
	bus := eventbus.NewInMemoryEventBus(eventbus.WithInMemoryLogger(logger))
	require.NoError(t, worker.NewAuditSubscriber(logger, m).Register(bus))

	evt := event.NewBaseEvent(follow.EventTypeCreated, "1:2", "follow", time.Now(), event.NewMetadata("1", "corr-9"))

	// Act
	require.NoError(t, bus.Publish(context.Background(), &evt))

	// Assert
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsConsumed.WithLabelValues(follow.EventTypeCreated)), 0)
	assert.Contains(t, logs.String(), follow.EventTypeCreated)
	assert.Contains(t, logs.String(), "corr-9")
}

func TestDeadLetterMonitor_Poll(t *testing.T) {
	// Arrange
	var logs bytes.Buffer
	m := metrics.NewWorkerMetrics(prometheus.NewRegistry())
	queue := &stubQueue{}
	queue.length.Store(5)
	monitor := worker.NewDeadLetterMonitor(queue, slog.New(slog.NewJSONHandler(&logs, nil)),
		worker.DeadLetterMonitorConfig{PollInterval: time.Second, Threshold: 3, Enabled: true}, m)

	// Act
	length := monitor.Poll(context.Background())

	// Assert
	assert.Equal(t, int64(5), length)
	assert.InDelta(t, 5, testutil.ToFloat64(m.DeadLetterLength), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DeadLetterPolls.WithLabelValues(metrics.StatusSuccess)), 0)
	assert.Contains(t, logs.String(), "dead letter queue above threshold")
}

func TestDeadLetterMonitor_PollFailure(t *testing.T) {
	m := metrics.NewWorkerMetrics(prometheus.NewRegistry())
	monitor := worker.NewDeadLetterMonitor(&stubQueue{err: errors.New("redis down")}, nil,
		worker.DefaultDeadLetterMonitorConfig(), m)

	assert.Equal(t, int64(-1), monitor.Poll(context.Background()))
	assert.InDelta(t, 1, testutil.ToFloat64(m.DeadLetterPolls.WithLabelValues(metrics.StatusFailed)), 0)
}

func TestDeadLetterMonitor_RunStopsOnCancel(t *testing.T) {
	// Arrange
	queue := &stubQueue{}
	monitor := worker.NewDeadLetterMonitor(queue, nil,
		worker.DeadLetterMonitorConfig{PollInterval: 10 * time.Millisecond, Enabled: true}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- monitor.Run(ctx) }()
	time.Sleep(30 * time.Millisecond)
	cancel()

	// Assert
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestDeadLetterMonitor_Disabled(t *testing.T) {
	monitor := worker.NewDeadLetterMonitor(&stubQueue{}, nil, worker.DeadLetterMonitorConfig{}, nil)

	assert.NoError(t, monitor.Run(context.Background()))
}
