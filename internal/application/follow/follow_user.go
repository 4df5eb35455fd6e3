package follow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// FollowUserUseCase - use case для создания подписки
type FollowUserUseCase struct {
	appcore.BaseUseCase

	repo  Repository
	users appcore.UserDirectory
	tx    appcore.TxManager
}

// NewFollowUserUseCase создает новый FollowUserUseCase
func NewFollowUserUseCase(
	repo Repository,
	users appcore.UserDirectory,
	tx appcore.TxManager,
	opts ...appcore.Option,
) *FollowUserUseCase {
	return &FollowUserUseCase{
		BaseUseCase: appcore.NewBaseUseCase(opts...),
		repo:        repo,
		users:       users,
		tx:          tx,
	}
}

// Execute выполняет подписку
func (uc *FollowUserUseCase) Execute(ctx context.Context, cmd FollowUserCommand) (Result, error) {
	if err := uc.ValidateContext(ctx); err != nil {
		return Result{}, uc.WrapError("validate context", err)
	}

	if err := uc.validate(cmd); err != nil {
		return Result{}, err
	}

	edge, err := follow.NewEdge(cmd.FollowerID, cmd.FolloweeID, uc.Now())
	if err != nil {
		return Result{}, appcore.NewValidationErrorFrom("followee_id", err)
	}

	if err = appcore.RequireUsers(ctx, uc.users, cmd.FollowerID, cmd.FolloweeID); err != nil {
		return Result{}, err
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// Быстрая проверка; уникальный индекс в хранилище остается источником истины
		exists, errExists := uc.repo.Exists(ctx, cmd.FollowerID, cmd.FolloweeID)
		if errExists != nil {
			return uc.WrapError("check follow edge", errExists)
		}
		if exists {
			return alreadyFollowing(cmd.FollowerID, cmd.FolloweeID)
		}

		if errInsert := uc.repo.Insert(ctx, edge); errInsert != nil {
			if errors.Is(errInsert, errs.ErrAlreadyExists) {
				return alreadyFollowing(cmd.FollowerID, cmd.FolloweeID)
			}
			return uc.WrapError("insert follow edge", errInsert)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	uc.Publish(ctx, follow.NewCreated(edge, uc.Metadata(ctx, cmd.FollowerID.String())))
	uc.Logger().InfoContext(ctx, "user followed",
		slog.Int64("follower_id", int64(cmd.FollowerID)),
		slog.Int64("followee_id", int64(cmd.FolloweeID)),
	)

	return Result{Result: appcore.Result[follow.Edge]{Value: edge}}, nil
}

func (uc *FollowUserUseCase) validate(cmd FollowUserCommand) error {
	if err := appcore.ValidateUserID("follower_id", cmd.FollowerID); err != nil {
		return err
	}
	return appcore.ValidateUserID("followee_id", cmd.FolloweeID)
}

func alreadyFollowing(followerID, followeeID user.ID) error {
	return appcore.NewConflictError(
		"follow",
		fmt.Sprintf("user %d already follows user %d", followerID, followeeID),
		ErrAlreadyFollowing,
	)
}
