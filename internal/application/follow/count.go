package follow

import (
	"context"

	"github.com/lllypuk/talentnet/internal/application/appcore"
)

// CountFollowersUseCase - число подписчиков; ноль считается ошибкой NotFound
type CountFollowersUseCase struct {
	appcore.BaseUseCase

	repo QueryRepository
}

// NewCountFollowersUseCase создает новый CountFollowersUseCase
func NewCountFollowersUseCase(repo QueryRepository, opts ...appcore.Option) *CountFollowersUseCase {
	return &CountFollowersUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), repo: repo}
}

// Execute выполняет подсчет
func (uc *CountFollowersUseCase) Execute(ctx context.Context, q CountFollowersQuery) (CountResult, error) {
	if err := appcore.ValidateUserID("user_id", q.UserID); err != nil {
		return CountResult{}, err
	}

	n, err := uc.repo.CountFollowers(ctx, q.UserID)
	if err != nil {
		return CountResult{}, uc.WrapError("count followers", err)
	}
	if n == 0 {
		return CountResult{}, appcore.NewNotFoundError("followers of user", q.UserID.String(), ErrNoFollowers)
	}
	return CountResult{Count: n}, nil
}

// CountFollowingUseCase - число подписок; ноль считается ошибкой NotFound
type CountFollowingUseCase struct {
	appcore.BaseUseCase

	repo QueryRepository
}

// NewCountFollowingUseCase создает новый CountFollowingUseCase
func NewCountFollowingUseCase(repo QueryRepository, opts ...appcore.Option) *CountFollowingUseCase {
	return &CountFollowingUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), repo: repo}
}

// Execute выполняет подсчет
func (uc *CountFollowingUseCase) Execute(ctx context.Context, q CountFollowingQuery) (CountResult, error) {
	if err := appcore.ValidateUserID("user_id", q.UserID); err != nil {
		return CountResult{}, err
	}

	n, err := uc.repo.CountFollowing(ctx, q.UserID)
	if err != nil {
		return CountResult{}, uc.WrapError("count followees", err)
	}
	if n == 0 {
		return CountResult{}, appcore.NewNotFoundError("followees of user", q.UserID.String(), ErrNoFollowees)
	}
	return CountResult{Count: n}, nil
}
