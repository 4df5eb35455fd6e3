// Package mentorship models mentorship requests: a mentee asks a mentor for
// help and the request moves once from PENDING to ACCEPTED or REJECTED.
package mentorship

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

var (
	// ErrSelfRequest is returned when mentee and mentor are the same user
	ErrSelfRequest = errors.New("user cannot request mentorship from themselves")

	// ErrBlankDescription is returned when a request has no description
	ErrBlankDescription = errors.New("description must not be blank")

	// ErrBlankReason is returned when a rejection has no reason
	ErrBlankReason = errors.New("rejection reason must not be blank")

	// ErrAlreadyProcessed is returned when accept/reject hits a non-pending request
	ErrAlreadyProcessed = errors.New("mentorship request already processed")
)

// Request is a mentorship request
type Request struct {
	id              uuid.UUID
	requesterID     user.ID
	receiverID      user.ID
	description     string
	status          Status
	rejectionReason string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewRequest creates a PENDING request from mentee to mentor at now.
func NewRequest(menteeID, mentorID user.ID, description string, now time.Time) (*Request, error) {
	if menteeID == mentorID {
		return nil, fmt.Errorf("%w: user %d", ErrSelfRequest, menteeID)
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}

	now = now.UTC()
	return &Request{
		id:          uuid.NewUUID(),
		requesterID: menteeID,
		receiverID:  mentorID,
		description: description,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct восстанавливает request из хранилища
func Reconstruct(
	id uuid.UUID,
	requesterID, receiverID user.ID,
	description string,
	status Status,
	rejectionReason string,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:              id,
		requesterID:     requesterID,
		receiverID:      receiverID,
		description:     description,
		status:          status,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Accept moves a pending request to ACCEPTED.
func (r *Request) Accept(now time.Time) error {
	if err := r.ensureTransition(StatusAccepted); err != nil {
		return err
	}
	r.status = StatusAccepted
	r.updatedAt = now.UTC()
	return nil
}

// Reject moves a pending request to REJECTED and records the reason.
func (r *Request) Reject(reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrBlankReason
	}
	if err := r.ensureTransition(StatusRejected); err != nil {
		return err
	}
	r.status = StatusRejected
	r.rejectionReason = reason
	r.updatedAt = now.UTC()
	return nil
}

func (r *Request) ensureTransition(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: request %s is already %s", ErrAlreadyProcessed, r.id, r.status)
	}
	return nil
}

// Getters

// ID returns the request id
func (r *Request) ID() uuid.UUID { return r.id }

// RequesterID returns the mentee
func (r *Request) RequesterID() user.ID { return r.requesterID }

// ReceiverID returns the mentor
func (r *Request) ReceiverID() user.ID { return r.receiverID }

// Description returns the free-text ask
func (r *Request) Description() string { return r.description }

// Status returns the current status
func (r *Request) Status() Status { return r.status }

// RejectionReason returns the reason, empty unless REJECTED
func (r *Request) RejectionReason() string { return r.rejectionReason }

// CreatedAt returns the creation time
func (r *Request) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the time of the last change
func (r *Request) UpdatedAt() time.Time { return r.updatedAt }
