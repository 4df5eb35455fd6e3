package mentorship

import (
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

// RequestMentorshipCommand - запрос менторства у mentor от mentee
type RequestMentorshipCommand struct {
	MenteeID    user.ID
	MentorID    user.ID
	Description string
}

func (c RequestMentorshipCommand) CommandName() string { return "RequestMentorship" }

// AcceptRequestCommand - принятие запроса
type AcceptRequestCommand struct {
	RequestID uuid.UUID
}

func (c AcceptRequestCommand) CommandName() string { return "AcceptMentorshipRequest" }

// RejectRequestCommand - отклонение запроса с причиной
type RejectRequestCommand struct {
	RequestID uuid.UUID
	Reason    string
}

func (c RejectRequestCommand) CommandName() string { return "RejectMentorshipRequest" }
