package mentorship

import (
	"github.com/lllypuk/talentnet/internal/domain/filter"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// RequestCriteria narrows a request listing. Nil fields impose no constraint.
type RequestCriteria struct {
	Description *string
	MenteeID    *user.ID
	MentorID    *user.ID
	Status      *Status
}

// IsEmpty reports whether no criterion is set.
func (c RequestCriteria) IsEmpty() bool {
	return c.Description == nil && c.MenteeID == nil && c.MentorID == nil && c.Status == nil
}

// FilterRequests returns the requests matching every present criterion,
// in their original order. Description matches by substring, the rest by equality.
func FilterRequests(requests []*Request, c RequestCriteria) []*Request {
	return filter.Apply(requests,
		func(r *Request) bool { return filter.Contains(r.description, c.Description) },
		func(r *Request) bool { return filter.Equal(r.requesterID, c.MenteeID) },
		func(r *Request) bool { return filter.Equal(r.receiverID, c.MentorID) },
		func(r *Request) bool { return filter.Equal(r.status, c.Status) },
	)
}
