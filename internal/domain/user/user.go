// Package user holds the read side of user identities: the numeric ID and
// the profile attributes the relationship logic filters on.
package user

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lllypuk/talentnet/internal/domain/errs"
)

// ID is an opaque numeric user identifier. Valid IDs are positive.
type ID int64

// ParseID parses a decimal user id.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid user id", errs.ErrInvalidInput, s)
	}
	return ID(n), nil
}

// IsValid reports whether id can reference a user.
func (id ID) IsValid() bool {
	return id > 0
}

// String returns the decimal form of id.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Profile is an immutable snapshot of the user attributes visible to this service.
type Profile struct {
	id       ID
	username string
	email    string
	city     string
	phone    string
	active   bool
}

// NewProfile creates an active profile.
func NewProfile(id ID, username, email, city, phone string) (Profile, error) {
	if !id.IsValid() {
		return Profile{}, fmt.Errorf("%w: user id must be positive", errs.ErrInvalidInput)
	}
	if strings.TrimSpace(username) == "" {
		return Profile{}, fmt.Errorf("%w: username is required", errs.ErrInvalidInput)
	}

	return Profile{
		id:       id,
		username: username,
		email:    email,
		city:     city,
		phone:    phone,
		active:   true,
	}, nil
}

// Reconstruct восстанавливает профиль из хранилища без валидации
func Reconstruct(id ID, username, email, city, phone string, active bool) Profile {
	return Profile{
		id:       id,
		username: username,
		email:    email,
		city:     city,
		phone:    phone,
		active:   active,
	}
}

// ID returns the user id
func (p Profile) ID() ID { return p.id }

// Username returns the display name used for name filtering
func (p Profile) Username() string { return p.username }

// Email returns the email address, may be empty
func (p Profile) Email() string { return p.email }

// City returns the city, may be empty
func (p Profile) City() string { return p.city }

// Phone returns the phone number, may be empty
func (p Profile) Phone() string { return p.phone }

// IsActive reports whether the profile is active
func (p Profile) IsActive() bool { return p.active }

// Deactivate returns a copy of the profile marked inactive.
func (p Profile) Deactivate() Profile {
	p.active = false
	return p
}
