package mentorship

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
)

// RequestMentorshipUseCase - use case для создания запроса на менторство
type RequestMentorshipUseCase struct {
	appcore.BaseUseCase

	repo     Repository
	users    appcore.UserDirectory
	tx       appcore.TxManager
	cooldown mentorship.CooldownPolicy
}

// NewRequestMentorshipUseCase создает новый RequestMentorshipUseCase
func NewRequestMentorshipUseCase(
	repo Repository,
	users appcore.UserDirectory,
	tx appcore.TxManager,
	cooldown mentorship.CooldownPolicy,
	opts ...appcore.Option,
) *RequestMentorshipUseCase {
	return &RequestMentorshipUseCase{
		BaseUseCase: appcore.NewBaseUseCase(opts...),
		repo:        repo,
		users:       users,
		tx:          tx,
		cooldown:    cooldown,
	}
}

// Execute создает запрос в статусе PENDING
func (uc *RequestMentorshipUseCase) Execute(ctx context.Context, cmd RequestMentorshipCommand) (Result, error) {
	if err := uc.ValidateContext(ctx); err != nil {
		return Result{}, uc.WrapError("validate context", err)
	}

	if err := uc.validate(cmd); err != nil {
		return Result{}, err
	}

	now := uc.Now()
	req, err := mentorship.NewRequest(cmd.MenteeID, cmd.MentorID, cmd.Description, now)
	if err != nil {
		if errors.Is(err, mentorship.ErrBlankDescription) {
			return Result{}, appcore.NewValidationErrorFrom("description", err)
		}
		return Result{}, appcore.NewValidationErrorFrom("mentor_id", err)
	}

	if err = appcore.RequireUsers(ctx, uc.users, cmd.MenteeID, cmd.MentorID); err != nil {
		return Result{}, err
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		latest, errLatest := uc.repo.FindLatestBetween(ctx, cmd.MenteeID, cmd.MentorID)
		switch {
		case errors.Is(errLatest, errs.ErrNotFound):
			latest = nil
		case errLatest != nil:
			return uc.WrapError("find latest request", errLatest)
		}

		if errCooldown := uc.cooldown.Check(latest, now); errCooldown != nil {
			return appcore.NewConflictError("mentorship request", errCooldown.Error(), errCooldown)
		}

		if errSave := uc.repo.Save(ctx, req); errSave != nil {
			return uc.WrapError("save request", errSave)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	uc.Publish(ctx, mentorship.NewRequested(req, uc.Metadata(ctx, cmd.MenteeID.String())))
	uc.Logger().InfoContext(ctx, "mentorship requested",
		slog.String("request_id", req.ID().String()),
		slog.Int64("mentee_id", int64(cmd.MenteeID)),
		slog.Int64("mentor_id", int64(cmd.MentorID)),
	)

	return newResult(req), nil
}

func (uc *RequestMentorshipUseCase) validate(cmd RequestMentorshipCommand) error {
	if err := appcore.ValidateUserID("mentee_id", cmd.MenteeID); err != nil {
		return err
	}
	return appcore.ValidateUserID("mentor_id", cmd.MentorID)
}
