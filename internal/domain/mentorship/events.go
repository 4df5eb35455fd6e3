package mentorship

import (
	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

const (
	// AggregateType тип агрегата
	AggregateType = "mentorship_request"

	// EventTypeRequested type event creating request
	EventTypeRequested = "mentorship.requested"
	// EventTypeAccepted type event accepting request
	EventTypeAccepted = "mentorship.accepted"
	// EventTypeRejected type event rejecting request
	EventTypeRejected = "mentorship.rejected"
)

// Requested event creating request
type Requested struct {
	event.BaseEvent

	MenteeID    user.ID `json:"mentee_id"`
	MentorID    user.ID `json:"mentor_id"`
	Description string  `json:"description"`
}

// NewRequested creates event Requested
func NewRequested(r *Request, metadata event.Metadata) *Requested {
	return &Requested{
		BaseEvent:   event.NewBaseEvent(EventTypeRequested, r.ID().String(), AggregateType, r.CreatedAt(), metadata),
		MenteeID:    r.RequesterID(),
		MentorID:    r.ReceiverID(),
		Description: r.Description(),
	}
}

// Accepted event accepting request
type Accepted struct {
	event.BaseEvent

	MenteeID user.ID `json:"mentee_id"`
	MentorID user.ID `json:"mentor_id"`
}

// NewAccepted creates event Accepted
func NewAccepted(r *Request, metadata event.Metadata) *Accepted {
	return &Accepted{
		BaseEvent: event.NewBaseEvent(EventTypeAccepted, r.ID().String(), AggregateType, r.UpdatedAt(), metadata),
		MenteeID:  r.RequesterID(),
		MentorID:  r.ReceiverID(),
	}
}

// Rejected event rejecting request
type Rejected struct {
	event.BaseEvent

	MenteeID user.ID `json:"mentee_id"`
	MentorID user.ID `json:"mentor_id"`
	Reason   string  `json:"reason"`
}

// NewRejected creates event Rejected
func NewRejected(r *Request, metadata event.Metadata) *Rejected {
	return &Rejected{
		BaseEvent: event.NewBaseEvent(EventTypeRejected, r.ID().String(), AggregateType, r.UpdatedAt(), metadata),
		MenteeID:  r.RequesterID(),
		MentorID:  r.ReceiverID(),
		Reason:    r.RejectionReason(),
	}
}
