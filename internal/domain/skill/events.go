package skill

import (
	"strconv"
	"time"

	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

const (
	// AggregateType тип агрегата
	AggregateType = "skill"

	// EventTypeOffered type event offering skill
	EventTypeOffered = "skill.offered"
	// EventTypeAcquired type event acquiring skill
	EventTypeAcquired = "skill.acquired"
)

// Offered event offering skill
type Offered struct {
	event.BaseEvent

	OfferID    string  `json:"offer_id"`
	ReceiverID user.ID `json:"receiver_id"`
	AuthorID   user.ID `json:"author_id"`
}

// NewOffered creates event Offered
func NewOffered(o *Offer, metadata event.Metadata) *Offered {
	return &Offered{
		BaseEvent:  event.NewBaseEvent(EventTypeOffered, formatID(o.SkillID()), AggregateType, o.CreatedAt(), metadata),
		OfferID:    o.ID().String(),
		ReceiverID: o.ReceiverID(),
		AuthorID:   o.AuthorID(),
	}
}

// Acquired event acquiring skill
type Acquired struct {
	event.BaseEvent

	UserID     user.ID   `json:"user_id"`
	Guarantors []user.ID `json:"guarantors"`
}

// NewAcquired creates event Acquired
func NewAcquired(skillID ID, userID user.ID, guarantors []user.ID, at time.Time, metadata event.Metadata) *Acquired {
	return &Acquired{
		BaseEvent:  event.NewBaseEvent(EventTypeAcquired, formatID(skillID), AggregateType, at, metadata),
		UserID:     userID,
		Guarantors: guarantors,
	}
}

func formatID(id ID) string {
	return strconv.FormatInt(int64(id), 10)
}
