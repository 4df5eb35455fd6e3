package mentorship

import (
	"context"
	"errors"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
)

// GetRequestsUseCase - список запросов по фильтру; пустой результат не ошибка
type GetRequestsUseCase struct {
	appcore.BaseUseCase

	repo QueryRepository
}

// NewGetRequestsUseCase создает новый GetRequestsUseCase
func NewGetRequestsUseCase(repo QueryRepository, opts ...appcore.Option) *GetRequestsUseCase {
	return &GetRequestsUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), repo: repo}
}

// Execute выполняет поиск
func (uc *GetRequestsUseCase) Execute(ctx context.Context, q GetRequestsQuery) (ListResult, error) {
	if err := uc.ValidateContext(ctx); err != nil {
		return ListResult{}, uc.WrapError("validate context", err)
	}

	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return ListResult{}, uc.WrapError("load requests", err)
	}

	return ListResult{Requests: mentorship.FilterRequests(all, q.Criteria)}, nil
}

// GetRequestUseCase - запрос по ID
type GetRequestUseCase struct {
	appcore.BaseUseCase

	repo QueryRepository
}

// NewGetRequestUseCase создает новый GetRequestUseCase
func NewGetRequestUseCase(repo QueryRepository, opts ...appcore.Option) *GetRequestUseCase {
	return &GetRequestUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), repo: repo}
}

// Execute выполняет поиск
func (uc *GetRequestUseCase) Execute(ctx context.Context, q GetRequestQuery) (Result, error) {
	if q.RequestID.IsZero() {
		return Result{}, appcore.NewValidationError("request_id", "is required")
	}

	req, err := uc.repo.FindByID(ctx, q.RequestID)
	if errors.Is(err, errs.ErrNotFound) {
		return Result{}, appcore.NewNotFoundError("mentorship request", q.RequestID.String(), ErrRequestNotFound)
	}
	if err != nil {
		return Result{}, uc.WrapError("find request", err)
	}
	return newResult(req), nil
}
