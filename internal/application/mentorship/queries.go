package mentorship

import (
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

// GetRequestsQuery - список запросов по фильтру
type GetRequestsQuery struct {
	Criteria mentorship.RequestCriteria
}

func (q GetRequestsQuery) QueryName() string { return "GetMentorshipRequests" }

// GetRequestQuery - запрос по ID
type GetRequestQuery struct {
	RequestID uuid.UUID
}

func (q GetRequestQuery) QueryName() string { return "GetMentorshipRequest" }
