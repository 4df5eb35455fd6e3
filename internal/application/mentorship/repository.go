package mentorship

import (
	"context"

	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

// CommandRepository defines interface for changing mentorship requests
// interface declared on the consumer side (application layer)
type CommandRepository interface {
	// Save inserts a new request
	Save(ctx context.Context, req *mentorship.Request) error

	// UpdateStatus persists req only if the stored status still equals expected.
	// Otherwise it fails with errs.ErrConcurrentModification.
	UpdateStatus(ctx context.Context, req *mentorship.Request, expected mentorship.Status) error
}

// QueryRepository defines interface for reading mentorship requests
// interface declared on the consumer side (application layer)
type QueryRepository interface {
	// FindByID returns the request or errs.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*mentorship.Request, error)

	// FindAll returns every request, fully materialized
	FindAll(ctx context.Context) ([]*mentorship.Request, error)

	// FindLatestBetween returns the newest request from mentee to mentor or errs.ErrNotFound
	FindLatestBetween(ctx context.Context, menteeID, mentorID user.ID) (*mentorship.Request, error)
}

// Repository combines Command and Query interfaces
type Repository interface {
	CommandRepository
	QueryRepository
}
