package memory

import (
	"context"
	"sync"

	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

// MentorshipRepository stores mentorship requests in creation order
type MentorshipRepository struct {
	mu       sync.RWMutex
	order    []uuid.UUID
	requests map[uuid.UUID]*mentorship.Request
}

// NewMentorshipRepository creates a new in-memory mentorship repository
func NewMentorshipRepository() *MentorshipRepository {
	return &MentorshipRepository{requests: make(map[uuid.UUID]*mentorship.Request)}
}

// Save inserts a new request or overwrites an existing one
func (r *MentorshipRepository) Save(_ context.Context, req *mentorship.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[req.ID()]; !ok {
		r.order = append(r.order, req.ID())
	}
	r.requests[req.ID()] = clone(req)
	return nil
}

// UpdateStatus stores req only if the stored status is still expected.
// Otherwise it fails with errs.ErrConcurrentModification.
func (r *MentorshipRepository) UpdateStatus(
	_ context.Context,
	req *mentorship.Request,
	expected mentorship.Status,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[req.ID()]
	if !ok {
		return errs.ErrNotFound
	}
	if stored.Status() != expected {
		return errs.ErrConcurrentModification
	}
	r.requests[req.ID()] = clone(req)
	return nil
}

// FindByID returns a copy of the request or errs.ErrNotFound
func (r *MentorshipRepository) FindByID(_ context.Context, id uuid.UUID) (*mentorship.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return clone(req), nil
}

// FindAll returns copies of all requests in creation order
func (r *MentorshipRepository) FindAll(_ context.Context) ([]*mentorship.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*mentorship.Request, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.requests[id]))
	}
	return out, nil
}

// FindLatestBetween returns the newest request from mentee to mentor, or errs.ErrNotFound
func (r *MentorshipRepository) FindLatestBetween(
	_ context.Context,
	menteeID, mentorID user.ID,
) (*mentorship.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *mentorship.Request
	for _, id := range r.order {
		req := r.requests[id]
		if req.RequesterID() != menteeID || req.ReceiverID() != mentorID {
			continue
		}
		if latest == nil || req.CreatedAt().After(latest.CreatedAt()) {
			latest = req
		}
	}
	if latest == nil {
		return nil, errs.ErrNotFound
	}
	return clone(latest), nil
}

func clone(req *mentorship.Request) *mentorship.Request {
	return mentorship.Reconstruct(
		req.ID(),
		req.RequesterID(),
		req.ReceiverID(),
		req.Description(),
		req.Status(),
		req.RejectionReason(),
		req.CreatedAt(),
		req.UpdatedAt(),
	)
}
