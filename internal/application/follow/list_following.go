package follow

import (
	"context"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// ListFollowingUseCase - подписки пользователя, отфильтрованные по профилю
type ListFollowingUseCase struct {
	appcore.BaseUseCase

	repo QueryRepository
}

// NewListFollowingUseCase создает новый ListFollowingUseCase
func NewListFollowingUseCase(repo QueryRepository, opts ...appcore.Option) *ListFollowingUseCase {
	return &ListFollowingUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), repo: repo}
}

// Execute mirrors ListFollowersUseCase for the outgoing direction.
func (uc *ListFollowingUseCase) Execute(ctx context.Context, q ListFollowingQuery) (ProfilesResult, error) {
	if err := uc.ValidateContext(ctx); err != nil {
		return ProfilesResult{}, uc.WrapError("validate context", err)
	}
	if err := appcore.ValidateUserID("user_id", q.UserID); err != nil {
		return ProfilesResult{}, err
	}

	profiles, err := uc.repo.FollowingOf(ctx, q.UserID)
	if err != nil {
		return ProfilesResult{}, uc.WrapError("load followees", err)
	}
	if len(profiles) == 0 {
		return ProfilesResult{}, appcore.NewNotFoundError("followees of user", q.UserID.String(), ErrNoFollowees)
	}

	return ProfilesResult{Profiles: user.FilterProfiles(profiles, q.Criteria)}, nil
}
