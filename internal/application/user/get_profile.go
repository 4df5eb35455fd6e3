package user

import (
	"context"
	"errors"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// GetProfileUseCase handles retrieval of a profile by ID
type GetProfileUseCase struct {
	appcore.BaseUseCase

	repo appcore.UserDirectory
}

// NewGetProfileUseCase creates New GetProfileUseCase
func NewGetProfileUseCase(repo appcore.UserDirectory, opts ...appcore.Option) *GetProfileUseCase {
	return &GetProfileUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), repo: repo}
}

// Execute performs retrieval
func (uc *GetProfileUseCase) Execute(ctx context.Context, q GetProfileQuery) (Result, error) {
	if err := appcore.ValidateUserID("user_id", q.UserID); err != nil {
		return Result{}, err
	}

	profile, err := loadProfile(ctx, uc.repo, q.UserID)
	if err != nil {
		return Result{}, err
	}
	return newResult(profile), nil
}

func loadProfile(ctx context.Context, repo appcore.UserDirectory, id user.ID) (user.Profile, error) {
	profile, err := repo.FindProfile(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return user.Profile{}, appcore.NewNotFoundError("user", id.String(), ErrUserNotFound)
	}
	if err != nil {
		return user.Profile{}, err
	}
	return profile, nil
}
