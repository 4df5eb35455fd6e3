package user

import (
	"context"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/application/appcore"
)

// DeactivateProfileUseCase помечает профиль неактивным. Связи и заявки не трогает.
type DeactivateProfileUseCase struct {
	appcore.BaseUseCase

	repo Repository
}

// NewDeactivateProfileUseCase создает новый DeactivateProfileUseCase
func NewDeactivateProfileUseCase(repo Repository, opts ...appcore.Option) *DeactivateProfileUseCase {
	return &DeactivateProfileUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), repo: repo}
}

// Execute выполняет деактивацию. Повторный вызов не является ошибкой.
func (uc *DeactivateProfileUseCase) Execute(ctx context.Context, cmd DeactivateProfileCommand) (Result, error) {
	if err := appcore.ValidateUserID("user_id", cmd.UserID); err != nil {
		return Result{}, err
	}

	profile, err := loadProfile(ctx, uc.repo, cmd.UserID)
	if err != nil {
		return Result{}, err
	}
	if !profile.IsActive() {
		return newResult(profile), nil
	}

	profile = profile.Deactivate()
	if err = uc.repo.Save(ctx, profile); err != nil {
		return Result{}, uc.WrapError("save profile", err)
	}

	uc.Logger().InfoContext(ctx, "profile deactivated", slog.Int64("user_id", int64(cmd.UserID)))
	return newResult(profile), nil
}
