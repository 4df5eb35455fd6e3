package follow

import "github.com/lllypuk/talentnet/internal/domain/user"

// FollowUserCommand - подписка follower на followee
type FollowUserCommand struct {
	FollowerID user.ID
	FolloweeID user.ID
}

func (c FollowUserCommand) CommandName() string { return "FollowUser" }

// UnfollowUserCommand - отписка follower от followee
type UnfollowUserCommand struct {
	FollowerID user.ID
	FolloweeID user.ID
}

func (c UnfollowUserCommand) CommandName() string { return "UnfollowUser" }
