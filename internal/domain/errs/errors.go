// Package errs holds the storage-agnostic error kinds shared by the domain,
// the repositories and the HTTP error mapping.
package errs

import "errors"

var (
	// ErrNotFound is returned when a user, edge, request or skill does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned by repositories on a unique index violation
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrConflict is returned when an operation contradicts the current state
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput is returned when input data is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when a conditional write loses a race
	ErrConcurrentModification = errors.New("concurrent modification detected")
)
