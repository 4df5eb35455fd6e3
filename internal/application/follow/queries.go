package follow

import "github.com/lllypuk/talentnet/internal/domain/user"

// ListFollowersQuery - подписчики пользователя с фильтром
type ListFollowersQuery struct {
	UserID   user.ID
	Criteria user.ProfileCriteria
}

func (q ListFollowersQuery) QueryName() string { return "ListFollowers" }

// ListFollowingQuery - подписки пользователя с фильтром
type ListFollowingQuery struct {
	UserID   user.ID
	Criteria user.ProfileCriteria
}

func (q ListFollowingQuery) QueryName() string { return "ListFollowing" }

// CountFollowersQuery - число подписчиков
type CountFollowersQuery struct {
	UserID user.ID
}

func (q CountFollowersQuery) QueryName() string { return "CountFollowers" }

// CountFollowingQuery - число подписок
type CountFollowingQuery struct {
	UserID user.ID
}

func (q CountFollowingQuery) QueryName() string { return "CountFollowing" }
