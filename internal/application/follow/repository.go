package follow

import (
	"context"

	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// CommandRepository defines interface for changing follow edges
// interface declared on the consumer side (application layer)
type CommandRepository interface {
	// Insert saves a new edge. A duplicate pair must fail with errs.ErrAlreadyExists.
	Insert(ctx context.Context, edge follow.Edge) error

	// Delete removes the edge. A missing pair must fail with errs.ErrNotFound.
	Delete(ctx context.Context, followerID, followeeID user.ID) error
}

// QueryRepository defines interface for reading follow edges
// interface declared on the consumer side (application layer)
type QueryRepository interface {
	// Exists checks if follower follows followee
	Exists(ctx context.Context, followerID, followeeID user.ID) (bool, error)

	// FollowersOf returns profiles of users following userID, fully materialized
	FollowersOf(ctx context.Context, userID user.ID) ([]user.Profile, error)

	// FollowingOf returns profiles of users followed by userID, fully materialized
	FollowingOf(ctx context.Context, userID user.ID) ([]user.Profile, error)

	// CountFollowers returns the number of users following userID
	CountFollowers(ctx context.Context, userID user.ID) (int, error)

	// CountFollowing returns the number of users followed by userID
	CountFollowing(ctx context.Context, userID user.ID) (int, error)
}

// Repository combines Command and Query interfaces
type Repository interface {
	CommandRepository
	QueryRepository
}
