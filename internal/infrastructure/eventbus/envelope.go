package eventbus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lllypuk/talentnet/internal/domain/event"
)

// PayloadEvent is a domain event received from Redis. The concrete event
// fields are only available as the raw JSON payload.
type PayloadEvent interface {
	event.DomainEvent
	EventID() string
	Payload() json.RawMessage
}

// envelope is the wire form of a domain event on a Redis channel.
type envelope struct {
	ID            string          `json:"id"`
	EventType     string          `json:"event_type"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Metadata      event.Metadata  `json:"metadata"`
	Payload       json.RawMessage `json:"payload"`
}

// encodeEvent assigns the event a fresh id and serializes it.
func encodeEvent(evt event.DomainEvent) (string, []byte, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return "", nil, fmt.Errorf("marshal %s payload: %w", evt.EventType(), err)
	}

	env := envelope{
		ID:            uuid.NewString(),
		EventType:     evt.EventType(),
		AggregateID:   evt.AggregateID(),
		AggregateType: evt.AggregateType(),
		OccurredAt:    evt.OccurredAt(),
		Metadata:      evt.Metadata(),
		Payload:       payload,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return "", nil, fmt.Errorf("marshal %s envelope: %w", evt.EventType(), err)
	}
	return env.ID, data, nil
}

func decodeEvent(raw string) (*receivedEvent, error) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, err
	}
	if env.EventType == "" {
		return nil, fmt.Errorf("envelope %q has no event type", env.ID)
	}
	return &receivedEvent{env: env}, nil
}

type receivedEvent struct {
	env envelope
}

func (e *receivedEvent) EventID() string          { return e.env.ID }
func (e *receivedEvent) EventType() string        { return e.env.EventType }
func (e *receivedEvent) AggregateID() string      { return e.env.AggregateID }
func (e *receivedEvent) AggregateType() string    { return e.env.AggregateType }
func (e *receivedEvent) OccurredAt() time.Time    { return e.env.OccurredAt }
func (e *receivedEvent) Metadata() event.Metadata { return e.env.Metadata }
func (e *receivedEvent) Payload() json.RawMessage { return e.env.Payload }

var _ PayloadEvent = (*receivedEvent)(nil)
