package mentorship

import (
	"fmt"
	"strings"

	"github.com/lllypuk/talentnet/internal/domain/errs"
)

// Status represents status of a mentorship request
type Status string

const (
	// StatusPending request ждет ответа ментора
	StatusPending Status = "PENDING"
	// StatusAccepted request принят
	StatusAccepted Status = "ACCEPTED"
	// StatusRejected request отклонен
	StatusRejected Status = "REJECTED"
)

// ParseStatus parses a status name, case-insensitively.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown mentorship status %q", errs.ErrInvalidInput, s)
	}
	return status, nil
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves s
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransitionTo reports whether next is reachable from s.
// Only PENDING has outgoing transitions.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsTerminal()
}

func (s Status) String() string {
	return string(s)
}
