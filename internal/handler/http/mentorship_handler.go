package httphandler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	mentorshipapp "github.com/lllypuk/talentnet/internal/application/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
)

// CreateMentorshipRequest is the body of POST /mentorship/requests.
type CreateMentorshipRequest struct {
	MenteeID    int64  `json:"mentee_id" validate:"gt=0"`
	MentorID    int64  `json:"mentor_id" validate:"gt=0"`
	Description string `json:"description" validate:"notblank"`
}

// RejectMentorshipRequest is the body of POST /mentorship/requests/:request_id/reject.
type RejectMentorshipRequest struct {
	Reason string `json:"reason" validate:"notblank"`
}

// MentorshipRequestResponse represents a mentorship request in API responses.
type MentorshipRequestResponse struct {
	ID              string `json:"id"`
	MenteeID        int64  `json:"mentee_id"`
	MentorID        int64  `json:"mentor_id"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// MentorshipService defines the workflow operations used by MentorshipHandler.
// Declared on the consumer side.
type MentorshipService interface {
	RequestMentorship(ctx context.Context, cmd mentorshipapp.RequestMentorshipCommand) (mentorshipapp.Result, error)
	GetRequests(ctx context.Context, query mentorshipapp.GetRequestsQuery) (mentorshipapp.ListResult, error)
	GetRequest(ctx context.Context, query mentorshipapp.GetRequestQuery) (mentorshipapp.Result, error)
	AcceptRequest(ctx context.Context, cmd mentorshipapp.AcceptRequestCommand) (mentorshipapp.Result, error)
	RejectRequest(ctx context.Context, cmd mentorshipapp.RejectRequestCommand) (mentorshipapp.Result, error)
}

// MentorshipHandler handles mentorship workflow requests.
type MentorshipHandler struct {
	mentorship MentorshipService
}

// NewMentorshipHandler creates a new MentorshipHandler.
func NewMentorshipHandler(requests MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{mentorship: requests}
}

// RegisterRoutes registers mentorship routes with the router.
func (h *MentorshipHandler) RegisterRoutes(r *httpserver.Router) {
	requests := r.API().Group("/mentorship/requests")
	requests.POST("", h.Create)
	requests.GET("", h.List)
	requests.GET("/:request_id", h.Get)
	requests.POST("/:request_id/accept", h.Accept)
	requests.POST("/:request_id/reject", h.Reject)
}

// Create handles POST /api/v1/mentorship/requests.
func (h *MentorshipHandler) Create(c echo.Context) error {
	var req CreateMentorshipRequest
	if err := httpserver.BindAndValidate(c, &req); err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.mentorship.RequestMentorship(c.Request().Context(), mentorshipapp.RequestMentorshipCommand{
		MenteeID:    user.ID(req.MenteeID),
		MentorID:    user.ID(req.MentorID),
		Description: req.Description,
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondCreated(c, ToMentorshipRequestResponse(result.Value))
}

// List handles GET /api/v1/mentorship/requests. At least one filter is required.
func (h *MentorshipHandler) List(c echo.Context) error {
	criteria, err := requestCriteria(c)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.mentorship.GetRequests(c.Request().Context(), mentorshipapp.GetRequestsQuery{Criteria: criteria})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	out := make([]MentorshipRequestResponse, 0, len(result.Requests))
	for _, r := range result.Requests {
		out = append(out, ToMentorshipRequestResponse(r))
	}
	return httpserver.RespondOK(c, out)
}

// Get handles GET /api/v1/mentorship/requests/:request_id.
func (h *MentorshipHandler) Get(c echo.Context) error {
	requestID, err := pathRequestID(c, "request_id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.mentorship.GetRequest(c.Request().Context(), mentorshipapp.GetRequestQuery{RequestID: requestID})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, ToMentorshipRequestResponse(result.Value))
}

// Accept handles POST /api/v1/mentorship/requests/:request_id/accept.
func (h *MentorshipHandler) Accept(c echo.Context) error {
	requestID, err := pathRequestID(c, "request_id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.mentorship.AcceptRequest(c.Request().Context(), mentorshipapp.AcceptRequestCommand{RequestID: requestID})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, ToMentorshipRequestResponse(result.Value))
}

// Reject handles POST /api/v1/mentorship/requests/:request_id/reject.
func (h *MentorshipHandler) Reject(c echo.Context) error {
	requestID, err := pathRequestID(c, "request_id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	var req RejectMentorshipRequest
	if err = httpserver.BindAndValidate(c, &req); err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.mentorship.RejectRequest(c.Request().Context(), mentorshipapp.RejectRequestCommand{
		RequestID: requestID,
		Reason:    req.Reason,
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, ToMentorshipRequestResponse(result.Value))
}

func requestCriteria(c echo.Context) (mentorship.RequestCriteria, error) {
	menteeID, err := optionalUserQuery(c, "mentee_id")
	if err != nil {
		return mentorship.RequestCriteria{}, err
	}
	mentorID, err := optionalUserQuery(c, "mentor_id")
	if err != nil {
		return mentorship.RequestCriteria{}, err
	}
	status, err := optionalStatusQuery(c, "status")
	if err != nil {
		return mentorship.RequestCriteria{}, err
	}

	criteria := mentorship.RequestCriteria{
		Description: optionalQuery(c, "description"),
		MenteeID:    menteeID,
		MentorID:    mentorID,
		Status:      status,
	}
	if criteria.IsEmpty() {
		return criteria, appcore.NewValidationError("filter", "at least one of description, mentee_id, mentor_id, status is required")
	}
	return criteria, nil
}

// ToMentorshipRequestResponse converts a request to its API form.
func ToMentorshipRequestResponse(r *mentorship.Request) MentorshipRequestResponse {
	return MentorshipRequestResponse{
		ID:              r.ID().String(),
		MenteeID:        int64(r.RequesterID()),
		MentorID:        int64(r.ReceiverID()),
		Description:     r.Description(),
		Status:          string(r.Status()),
		RejectionReason: r.RejectionReason(),
		CreatedAt:       formatTime(r.CreatedAt()),
		UpdatedAt:       formatTime(r.UpdatedAt()),
	}
}
