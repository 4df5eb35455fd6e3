package mentorship

import (
	"context"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
)

// AcceptRequestUseCase - use case для принятия запроса ментором
type AcceptRequestUseCase struct {
	appcore.BaseUseCase

	repo Repository
	tx   appcore.TxManager
}

// NewAcceptRequestUseCase создает новый AcceptRequestUseCase
func NewAcceptRequestUseCase(repo Repository, tx appcore.TxManager, opts ...appcore.Option) *AcceptRequestUseCase {
	return &AcceptRequestUseCase{
		BaseUseCase: appcore.NewBaseUseCase(opts...),
		repo:        repo,
		tx:          tx,
	}
}

// Execute переводит запрос PENDING -> ACCEPTED
func (uc *AcceptRequestUseCase) Execute(ctx context.Context, cmd AcceptRequestCommand) (Result, error) {
	if err := uc.ValidateContext(ctx); err != nil {
		return Result{}, uc.WrapError("validate context", err)
	}

	now := uc.Now()
	req, err := transition(ctx, &uc.BaseUseCase, uc.repo, uc.tx, cmd.RequestID, func(r *mentorship.Request) error {
		return r.Accept(now)
	})
	if err != nil {
		return Result{}, err
	}

	uc.Publish(ctx, mentorship.NewAccepted(req, uc.Metadata(ctx, req.ReceiverID().String())))
	uc.Logger().InfoContext(ctx, "mentorship request accepted", slog.String("request_id", req.ID().String()))

	return newResult(req), nil
}
