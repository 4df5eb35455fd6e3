package event

import (
	"context"
	"time"
)

// DomainEvent represents a domain event
type DomainEvent interface {
	// EventType returns the event type, e.g. "follow.created"
	EventType() string

	// AggregateID returns the ID of the entity the event belongs to
	AggregateID() string

	// AggregateType returns the entity kind
	AggregateType() string

	// OccurredAt returns the time when the event occurred
	OccurredAt() time.Time

	// Metadata returns the event metadata
	Metadata() Metadata
}

// Bus is an interface for publishing events
type Bus interface {
	// Publish publishes an event
	Publish(ctx context.Context, event DomainEvent) error
}

// BusFunc adapts a plain function to Bus.
type BusFunc func(ctx context.Context, event DomainEvent) error

// Publish calls f(ctx, event).
func (f BusFunc) Publish(ctx context.Context, event DomainEvent) error {
	return f(ctx, event)
}
