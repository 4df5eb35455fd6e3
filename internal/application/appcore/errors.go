package appcore

import (
	"errors"
	"fmt"

	"github.com/lllypuk/talentnet/internal/domain/errs"
)

// Common application errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidID        = errors.New("invalid ID")
	ErrEmptyField       = errors.New("required field is empty")
)

// ValidationError represents a validation error with context.
// It matches errs.ErrInvalidInput and unwraps to Cause when set.
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the specific cause
func (e ValidationError) Unwrap() error { return e.Cause }

// Is reports the error kind
func (e ValidationError) Is(target error) bool {
	return target == errs.ErrInvalidInput || target == ErrValidationFailed
}

// NewValidationError creates a ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorFrom creates a ValidationError carrying cause.
// The message is taken from cause.
func NewValidationErrorFrom(field string, cause error) error {
	return &ValidationError{Field: field, Message: cause.Error(), Cause: cause}
}

// NotFoundError represents a "not found" error
type NotFoundError struct {
	Resource string
	ID       string
	Cause    error
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Unwrap returns the specific cause
func (e NotFoundError) Unwrap() error { return e.Cause }

// Is reports the error kind
func (e NotFoundError) Is(target error) bool {
	return target == errs.ErrNotFound
}

// NewNotFoundError creates a NotFoundError
func NewNotFoundError(resource, id string, cause error) error {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
		Cause:    cause,
	}
}

// ConflictError represents a conflict with the current state
type ConflictError struct {
	Resource string
	Reason   string
	Cause    error
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %s", e.Resource, e.Reason)
}

// Unwrap returns the specific cause
func (e ConflictError) Unwrap() error { return e.Cause }

// Is reports the error kind
func (e ConflictError) Is(target error) bool {
	return target == errs.ErrConflict
}

// NewConflictError creates a ConflictError
func NewConflictError(resource, reason string, cause error) error {
	return &ConflictError{
		Resource: resource,
		Reason:   reason,
		Cause:    cause,
	}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
