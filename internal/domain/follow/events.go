package follow

import (
	"time"

	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

const (
	// AggregateType тип агрегата для событий подписок
	AggregateType = "follow"

	// EventTypeCreated type event creating edge
	EventTypeCreated = "follow.created"
	// EventTypeRemoved type event removing edge
	EventTypeRemoved = "follow.removed"
)

// Created event creating edge
type Created struct {
	event.BaseEvent

	FollowerID user.ID `json:"follower_id"`
	FolloweeID user.ID `json:"followee_id"`
}

// NewCreated creates event Created
func NewCreated(edge Edge, metadata event.Metadata) *Created {
	return &Created{
		BaseEvent:  event.NewBaseEvent(EventTypeCreated, edge.Key(), AggregateType, edge.CreatedAt(), metadata),
		FollowerID: edge.FollowerID(),
		FolloweeID: edge.FolloweeID(),
	}
}

// Removed event removing edge
type Removed struct {
	event.BaseEvent

	FollowerID user.ID `json:"follower_id"`
	FolloweeID user.ID `json:"followee_id"`
}

// NewRemoved creates event Removed
func NewRemoved(followerID, followeeID user.ID, at time.Time, metadata event.Metadata) *Removed {
	return &Removed{
		BaseEvent:  event.NewBaseEvent(EventTypeRemoved, Key(followerID, followeeID), AggregateType, at, metadata),
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
}
