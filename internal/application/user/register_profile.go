package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// RegisterProfileUseCase сохраняет профиль, пришедший из сервиса пользователей
type RegisterProfileUseCase struct {
	appcore.BaseUseCase

	repo Repository
}

// NewRegisterProfileUseCase создает новый RegisterProfileUseCase
func NewRegisterProfileUseCase(repo Repository, opts ...appcore.Option) *RegisterProfileUseCase {
	return &RegisterProfileUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), repo: repo}
}

// Execute выполняет регистрацию
func (uc *RegisterProfileUseCase) Execute(ctx context.Context, cmd RegisterProfileCommand) (Result, error) {
	if err := appcore.ValidateUserID("user_id", cmd.UserID); err != nil {
		return Result{}, err
	}
	if err := appcore.ValidateRequired("username", cmd.Username); err != nil {
		return Result{}, err
	}

	profile, err := user.NewProfile(cmd.UserID, cmd.Username, cmd.Email, cmd.City, cmd.Phone)
	if err != nil {
		return Result{}, appcore.NewValidationErrorFrom("profile", err)
	}

	exists, err := uc.repo.Exists(ctx, cmd.UserID)
	if err != nil {
		return Result{}, uc.WrapError("check user", err)
	}
	if exists {
		return Result{}, appcore.NewConflictError("user", "user "+cmd.UserID.String()+" already exists", ErrUserAlreadyExists)
	}

	if err = uc.repo.Save(ctx, profile); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return Result{}, appcore.NewConflictError("user", "user "+cmd.UserID.String()+" already exists", ErrUserAlreadyExists)
		}
		return Result{}, uc.WrapError("save profile", err)
	}

	uc.Logger().InfoContext(ctx, "profile registered", slog.Int64("user_id", int64(cmd.UserID)))
	return newResult(profile), nil
}
