package event

import "time"

// Metadata содержит метаданные события
type Metadata struct {
	ActorID       string    `json:"actor_id,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Timestamp     time.Time `json:"timestamp,omitempty"`
}

// NewMetadata создает новые метаданные
func NewMetadata(actorID, correlationID string) Metadata {
	return Metadata{
		ActorID:       actorID,
		CorrelationID: correlationID,
		Timestamp:     time.Now().UTC(),
	}
}
