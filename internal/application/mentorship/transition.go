package mentorship

import (
	"context"
	"errors"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

// transition loads a request, applies mutate and persists it conditioned on
// the status it was loaded with. Shared by accept and reject.
func transition(
	ctx context.Context,
	b *appcore.BaseUseCase,
	repo Repository,
	tx appcore.TxManager,
	id uuid.UUID,
	mutate func(req *mentorship.Request) error,
) (*mentorship.Request, error) {
	if id.IsZero() {
		return nil, appcore.NewValidationError("request_id", "is required")
	}

	var req *mentorship.Request
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		found, errFind := repo.FindByID(ctx, id)
		if errors.Is(errFind, errs.ErrNotFound) {
			return appcore.NewNotFoundError("mentorship request", id.String(), ErrRequestNotFound)
		}
		if errFind != nil {
			return b.WrapError("find request", errFind)
		}

		loaded := found.Status()
		if errMutate := mutate(found); errMutate != nil {
			return classifyTransitionError(errMutate)
		}

		errUpdate := repo.UpdateStatus(ctx, found, loaded)
		if errors.Is(errUpdate, errs.ErrConcurrentModification) || errors.Is(errUpdate, errs.ErrNotFound) {
			// кто-то успел обработать запрос между чтением и записью
			return alreadyProcessed(id)
		}
		if errUpdate != nil {
			return b.WrapError("update request status", errUpdate)
		}

		req = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func classifyTransitionError(err error) error {
	switch {
	case errors.Is(err, mentorship.ErrAlreadyProcessed):
		return appcore.NewConflictError("mentorship request", err.Error(), err)
	case errors.Is(err, mentorship.ErrBlankReason):
		return appcore.NewValidationErrorFrom("reason", err)
	default:
		return err
	}
}

func alreadyProcessed(id uuid.UUID) error {
	return appcore.NewConflictError(
		"mentorship request",
		"request "+id.String()+" was processed concurrently",
		mentorship.ErrAlreadyProcessed,
	)
}
