package mentorship

import (
	"errors"
	"fmt"
	"time"
)

// DefaultCooldownMonths is the minimum gap between two requests of the same pair.
const DefaultCooldownMonths = 3

// ErrCooldownActive is returned when the pair's previous request is too recent.
var ErrCooldownActive = errors.New("mentorship request cooldown is active")

// CooldownPolicy throttles repeated requests from one mentee to one mentor.
// It is keyed by the ordered pair; the reverse pair has its own window.
type CooldownPolicy struct {
	Months int
}

// NewCooldownPolicy returns a policy, falling back to DefaultCooldownMonths for months <= 0.
func NewCooldownPolicy(months int) CooldownPolicy {
	if months <= 0 {
		months = DefaultCooldownMonths
	}
	return CooldownPolicy{Months: months}
}

// Check fails with ErrCooldownActive if latest was created inside the window ending at now.
// A nil latest means the pair has no history.
func (p CooldownPolicy) Check(latest *Request, now time.Time) error {
	if latest == nil {
		return nil
	}
	windowStart := addMonths(now, -p.Months)
	if latest.CreatedAt().After(windowStart) {
		return fmt.Errorf("%w: user %d already asked user %d on %s, next request allowed after %s",
			ErrCooldownActive,
			latest.RequesterID(),
			latest.ReceiverID(),
			latest.CreatedAt().Format(time.DateOnly),
			p.NextAllowedAt(latest).Format(time.DateOnly),
		)
	}
	return nil
}

// NextAllowedAt returns the first moment a new request for the same pair passes Check.
// When the target month is shorter than the creation day, that is midnight of
// the first day of the following month.
func (p CooldownPolicy) NextAllowedAt(latest *Request) time.Time {
	created := latest.CreatedAt()
	next := addMonths(created, p.Months)
	if next.Day() == created.Day() {
		return next
	}
	y, m, _ := next.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, next.Location())
}

// addMonths shifts t by months and clamps the day to the length of the target
// month: May 31 minus 3 months is Feb 28, not Mar 3 as with AddDate.
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	target := m + time.Month(months)
	// нулевой день следующего месяца = последний день целевого
	lastDay := time.Date(y, target+1, 0, 0, 0, 0, 0, t.Location()).Day()
	return time.Date(y, target, min(d, lastDay), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
