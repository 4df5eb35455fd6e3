package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventDomain "github.com/lllypuk/talentnet/internal/domain/event"
)

func TestNewMetadata(t *testing.T) {
	// Act
	metadata := eventDomain.NewMetadata("42", "corr-456")

	// Assert
	assert.Equal(t, "42", metadata.ActorID)
	assert.Equal(t, "corr-456", metadata.CorrelationID)
	assert.WithinDuration(t, time.Now(), metadata.Timestamp, time.Second)
}

func TestNewBaseEvent(t *testing.T) {
	// Arrange
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	metadata := eventDomain.NewMetadata("1", "")

	// Act
	evt := eventDomain.NewBaseEvent("follow.created", "1:2", "follow", at, metadata)

	// Assert
	assert.Equal(t, "follow.created", evt.EventType())
	assert.Equal(t, "1:2", evt.AggregateID())
	assert.Equal(t, "follow", evt.AggregateType())
	assert.Equal(t, at, evt.OccurredAt())
	assert.Equal(t, metadata, evt.Metadata())
}

func TestNewBaseEvent_ZeroTimeDefaultsToNow(t *testing.T) {
	// Act
	evt := eventDomain.NewBaseEvent("x", "id", "t", time.Time{}, eventDomain.Metadata{})

	// Assert
	assert.WithinDuration(t, time.Now(), evt.OccurredAt(), time.Second)
}

func TestBusFunc(t *testing.T) {
	// Arrange
	var got eventDomain.DomainEvent
	bus := eventDomain.BusFunc(func(_ context.Context, evt eventDomain.DomainEvent) error {
		got = evt
		return nil
	})
	evt := eventDomain.NewBaseEvent("x", "id", "t", time.Now(), eventDomain.Metadata{})

	// Act
	err := bus.Publish(context.Background(), evt)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, evt, got)
}
