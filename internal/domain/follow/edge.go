// Package follow models the directed follow relationship between two users.
package follow

import (
	"errors"
	"fmt"
	"time"

	"github.com/lllypuk/talentnet/internal/domain/user"
)

// ErrSelfFollow is returned when a user tries to follow themselves.
var ErrSelfFollow = errors.New("user cannot follow themselves")

// Edge is the fact "follower follows followee". An edge either exists or it doesn't.
type Edge struct {
	followerID user.ID
	followeeID user.ID
	createdAt  time.Time
}

// NewEdge validates the pair and creates an edge stamped with createdAt.
func NewEdge(followerID, followeeID user.ID, createdAt time.Time) (Edge, error) {
	if !followerID.IsValid() || !followeeID.IsValid() {
		return Edge{}, fmt.Errorf("invalid edge %d -> %d: ids must be positive", followerID, followeeID)
	}
	if followerID == followeeID {
		return Edge{}, fmt.Errorf("%w: user %d", ErrSelfFollow, followerID)
	}
	return Edge{followerID: followerID, followeeID: followeeID, createdAt: createdAt.UTC()}, nil
}

// Reconstruct restores an edge from storage
func Reconstruct(followerID, followeeID user.ID, createdAt time.Time) Edge {
	return Edge{followerID: followerID, followeeID: followeeID, createdAt: createdAt}
}

// FollowerID returns the follower
func (e Edge) FollowerID() user.ID { return e.followerID }

// FolloweeID returns the followed user
func (e Edge) FolloweeID() user.ID { return e.followeeID }

// CreatedAt returns the time the edge was created
func (e Edge) CreatedAt() time.Time { return e.createdAt }

// Key identifies the edge, "follower:followee".
func (e Edge) Key() string {
	return Key(e.followerID, e.followeeID)
}

// Key builds the edge identity for a pair.
func Key(followerID, followeeID user.ID) string {
	return followerID.String() + ":" + followeeID.String()
}
