package mentorship

import (
	"context"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
)

// RejectRequestUseCase - use case для отклонения запроса ментором
type RejectRequestUseCase struct {
	appcore.BaseUseCase

	repo Repository
	tx   appcore.TxManager
}

// NewRejectRequestUseCase создает новый RejectRequestUseCase
func NewRejectRequestUseCase(repo Repository, tx appcore.TxManager, opts ...appcore.Option) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		BaseUseCase: appcore.NewBaseUseCase(opts...),
		repo:        repo,
		tx:          tx,
	}
}

// Execute переводит запрос PENDING -> REJECTED и сохраняет причину
func (uc *RejectRequestUseCase) Execute(ctx context.Context, cmd RejectRequestCommand) (Result, error) {
	if err := uc.ValidateContext(ctx); err != nil {
		return Result{}, uc.WrapError("validate context", err)
	}
	if err := appcore.ValidateRequired("reason", cmd.Reason); err != nil {
		return Result{}, err
	}

	now := uc.Now()
	req, err := transition(ctx, &uc.BaseUseCase, uc.repo, uc.tx, cmd.RequestID, func(r *mentorship.Request) error {
		return r.Reject(cmd.Reason, now)
	})
	if err != nil {
		return Result{}, err
	}

	uc.Publish(ctx, mentorship.NewRejected(req, uc.Metadata(ctx, req.ReceiverID().String())))
	uc.Logger().InfoContext(ctx, "mentorship request rejected", slog.String("request_id", req.ID().String()))

	return newResult(req), nil
}
