package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// FollowRepository keeps follow edges in insertion order.
// Listings join edges with profiles from users; edges to unknown users are skipped.
type FollowRepository struct {
	mu    sync.RWMutex
	edges []follow.Edge
	users *UserRepository
}

// NewFollowRepository creates a new in-memory follow repository
func NewFollowRepository(users *UserRepository) *FollowRepository {
	return &FollowRepository{users: users}
}

// Insert saves a new edge; a duplicate pair fails with errs.ErrAlreadyExists
func (r *FollowRepository) Insert(_ context.Context, edge follow.Edge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(edge.FollowerID(), edge.FolloweeID()) >= 0 {
		return errs.ErrAlreadyExists
	}
	r.edges = append(r.edges, edge)
	return nil
}

// Delete removes the edge; a missing pair fails with errs.ErrNotFound
func (r *FollowRepository) Delete(_ context.Context, followerID, followeeID user.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(followerID, followeeID)
	if i < 0 {
		return errs.ErrNotFound
	}
	r.edges = slices.Delete(r.edges, i, i+1)
	return nil
}

// Exists checks if follower follows followee
func (r *FollowRepository) Exists(_ context.Context, followerID, followeeID user.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(followerID, followeeID) >= 0, nil
}

// FollowersOf returns profiles of users following userID
func (r *FollowRepository) FollowersOf(_ context.Context, userID user.ID) ([]user.Profile, error) {
	return r.users.profilesOf(r.collect(func(e follow.Edge) (user.ID, bool) {
		return e.FollowerID(), e.FolloweeID() == userID
	})), nil
}

// FollowingOf returns profiles of users followed by userID
func (r *FollowRepository) FollowingOf(_ context.Context, userID user.ID) ([]user.Profile, error) {
	return r.users.profilesOf(r.collect(func(e follow.Edge) (user.ID, bool) {
		return e.FolloweeID(), e.FollowerID() == userID
	})), nil
}

// CountFollowers returns the number of users following userID
func (r *FollowRepository) CountFollowers(_ context.Context, userID user.ID) (int, error) {
	return len(r.collect(func(e follow.Edge) (user.ID, bool) {
		return e.FollowerID(), e.FolloweeID() == userID
	})), nil
}

// CountFollowing returns the number of users followed by userID
func (r *FollowRepository) CountFollowing(_ context.Context, userID user.ID) (int, error) {
	return len(r.collect(func(e follow.Edge) (user.ID, bool) {
		return e.FolloweeID(), e.FollowerID() == userID
	})), nil
}

func (r *FollowRepository) collect(pick func(follow.Edge) (user.ID, bool)) []user.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]user.ID, 0)
	for _, e := range r.edges {
		if id, ok := pick(e); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *FollowRepository) indexOf(followerID, followeeID user.ID) int {
	return slices.IndexFunc(r.edges, func(e follow.Edge) bool {
		return e.FollowerID() == followerID && e.FolloweeID() == followeeID
	})
}
