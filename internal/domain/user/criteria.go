package user

import "github.com/lllypuk/talentnet/internal/domain/filter"

// ProfileCriteria narrows a profile listing. Nil fields impose no constraint.
type ProfileCriteria struct {
	Name  *string
	Email *string
	City  *string
	Phone *string
}

// IsEmpty reports whether no criterion is set.
func (c ProfileCriteria) IsEmpty() bool {
	return c.Name == nil && c.Email == nil && c.City == nil && c.Phone == nil
}

// FilterProfiles returns the profiles matching every present criterion,
// in their original order.
func FilterProfiles(profiles []Profile, c ProfileCriteria) []Profile {
	return filter.Apply(profiles,
		func(p Profile) bool { return filter.Contains(p.username, c.Name) },
		func(p Profile) bool { return filter.Contains(p.email, c.Email) },
		func(p Profile) bool { return filter.Contains(p.city, c.City) },
		func(p Profile) bool { return filter.Contains(p.phone, c.Phone) },
	)
}
