package event

import "time"

// BaseEvent базовая реализация DomainEvent.
// Конкретные события встраивают BaseEvent и добавляют экспортируемые поля payload.
type BaseEvent struct {
	eventType     string
	aggregateID   string
	aggregateType string
	occurredAt    time.Time
	metadata      Metadata
}

// NewBaseEvent создает новое базовое событие
func NewBaseEvent(eventType, aggregateID, aggregateType string, occurredAt time.Time, metadata Metadata) BaseEvent {
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return BaseEvent{
		eventType:     eventType,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		occurredAt:    occurredAt.UTC(),
		metadata:      metadata,
	}
}

// EventType возвращает тип события
func (e BaseEvent) EventType() string {
	return e.eventType
}

// AggregateID возвращает ID агрегата
func (e BaseEvent) AggregateID() string {
	return e.aggregateID
}

// AggregateType возвращает тип агрегата
func (e BaseEvent) AggregateType() string {
	return e.aggregateType
}

// OccurredAt возвращает время возникновения события
func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Metadata возвращает метаданные события
func (e BaseEvent) Metadata() Metadata {
	return e.metadata
}
