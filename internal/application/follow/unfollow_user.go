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

// UnfollowUserUseCase - use case для удаления подписки
type UnfollowUserUseCase struct {
	appcore.BaseUseCase

	repo Repository
	tx   appcore.TxManager
}

// NewUnfollowUserUseCase создает новый UnfollowUserUseCase
func NewUnfollowUserUseCase(repo Repository, tx appcore.TxManager, opts ...appcore.Option) *UnfollowUserUseCase {
	return &UnfollowUserUseCase{
		BaseUseCase: appcore.NewBaseUseCase(opts...),
		repo:        repo,
		tx:          tx,
	}
}

// Execute выполняет отписку
func (uc *UnfollowUserUseCase) Execute(ctx context.Context, cmd UnfollowUserCommand) (Result, error) {
	if err := uc.ValidateContext(ctx); err != nil {
		return Result{}, uc.WrapError("validate context", err)
	}

	if err := appcore.ValidateUserID("follower_id", cmd.FollowerID); err != nil {
		return Result{}, err
	}
	if err := appcore.ValidateUserID("followee_id", cmd.FolloweeID); err != nil {
		return Result{}, err
	}

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, errExists := uc.repo.Exists(ctx, cmd.FollowerID, cmd.FolloweeID)
		if errExists != nil {
			return uc.WrapError("check follow edge", errExists)
		}
		if !exists {
			return notFollowing(cmd.FollowerID, cmd.FolloweeID)
		}

		if errDelete := uc.repo.Delete(ctx, cmd.FollowerID, cmd.FolloweeID); errDelete != nil {
			if errors.Is(errDelete, errs.ErrNotFound) {
				return notFollowing(cmd.FollowerID, cmd.FolloweeID)
			}
			return uc.WrapError("delete follow edge", errDelete)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	now := uc.Now()
	uc.Publish(ctx, follow.NewRemoved(cmd.FollowerID, cmd.FolloweeID, now, uc.Metadata(ctx, cmd.FollowerID.String())))
	uc.Logger().InfoContext(ctx, "user unfollowed",
		slog.Int64("follower_id", int64(cmd.FollowerID)),
		slog.Int64("followee_id", int64(cmd.FolloweeID)),
	)

	return Result{Result: appcore.Result[follow.Edge]{
		Value: follow.Reconstruct(cmd.FollowerID, cmd.FolloweeID, now),
	}}, nil
}

func notFollowing(followerID, followeeID user.ID) error {
	return &appcore.NotFoundError{
		Resource: "follow edge",
		ID:       fmt.Sprintf("%d -> %d", followerID, followeeID),
		Cause:    ErrNotFollowing,
	}
}
