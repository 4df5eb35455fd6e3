package follow

import (
	"context"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// ListFollowersUseCase - подписчики пользователя, отфильтрованные по профилю
type ListFollowersUseCase struct {
	appcore.BaseUseCase

	repo QueryRepository
}

// NewListFollowersUseCase создает новый ListFollowersUseCase
func NewListFollowersUseCase(repo QueryRepository, opts ...appcore.Option) *ListFollowersUseCase {
	return &ListFollowersUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), repo: repo}
}

// Execute returns a NotFoundError when the user has no followers at all.
// A filter that excludes everyone yields an empty list.
func (uc *ListFollowersUseCase) Execute(ctx context.Context, q ListFollowersQuery) (ProfilesResult, error) {
	if err := uc.ValidateContext(ctx); err != nil {
		return ProfilesResult{}, uc.WrapError("validate context", err)
	}
	if err := appcore.ValidateUserID("user_id", q.UserID); err != nil {
		return ProfilesResult{}, err
	}

	profiles, err := uc.repo.FollowersOf(ctx, q.UserID)
	if err != nil {
		return ProfilesResult{}, uc.WrapError("load followers", err)
	}
	if len(profiles) == 0 {
		return ProfilesResult{}, appcore.NewNotFoundError("followers of user", q.UserID.String(), ErrNoFollowers)
	}

	return ProfilesResult{Profiles: user.FilterProfiles(profiles, q.Criteria)}, nil
}
