package httphandler

import (
	"context"

	"github.com/labstack/echo/v4"

	userapp "github.com/lllypuk/talentnet/internal/application/user"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
)

// RegisterProfileRequest registers a profile mirrored from the user service.
type RegisterProfileRequest struct {
	ID       int64  `json:"id" validate:"gt=0"`
	Username string `json:"username" validate:"notblank"`
	Email    string `json:"email" validate:"omitempty,email"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
}

// ProfileResponse represents a user profile in API responses.
type ProfileResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	City     string `json:"city,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Active   bool   `json:"active"`
}

// ProfileService defines the profile operations used by ProfileHandler.
// Declared on the consumer side.
type ProfileService interface {
	RegisterProfile(ctx context.Context, cmd userapp.RegisterProfileCommand) (userapp.Result, error)
	GetProfile(ctx context.Context, query userapp.GetProfileQuery) (userapp.Result, error)
	DeactivateProfile(ctx context.Context, cmd userapp.DeactivateProfileCommand) (userapp.Result, error)
}

// ProfileHandler handles user profile requests.
type ProfileHandler struct {
	profiles ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// RegisterRoutes registers profile routes with the router.
func (h *ProfileHandler) RegisterRoutes(r *httpserver.Router) {
	r.API().POST("/users", h.Register)
	r.API().GET("/users/:id", h.Get)
	r.API().POST("/users/:id/deactivate", h.Deactivate)
}

// Register handles POST /api/v1/users.
func (h *ProfileHandler) Register(c echo.Context) error {
	var req RegisterProfileRequest
	if err := httpserver.BindAndValidate(c, &req); err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.profiles.RegisterProfile(c.Request().Context(), userapp.RegisterProfileCommand{
		UserID:   user.ID(req.ID),
		Username: req.Username,
		Email:    req.Email,
		City:     req.City,
		Phone:    req.Phone,
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondCreated(c, ToProfileResponse(result.Value))
}

// Get handles GET /api/v1/users/:id.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.profiles.GetProfile(c.Request().Context(), userapp.GetProfileQuery{UserID: userID})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, ToProfileResponse(result.Value))
}

// Deactivate handles POST /api/v1/users/:id/deactivate.
func (h *ProfileHandler) Deactivate(c echo.Context) error {
	userID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.profiles.DeactivateProfile(c.Request().Context(), userapp.DeactivateProfileCommand{UserID: userID})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, ToProfileResponse(result.Value))
}

// ToProfileResponse converts a profile to its API form.
func ToProfileResponse(p user.Profile) ProfileResponse {
	return ProfileResponse{
		ID:       int64(p.ID()),
		Username: p.Username(),
		Email:    p.Email(),
		City:     p.City(),
		Phone:    p.Phone(),
		Active:   p.IsActive(),
	}
}

func toProfileResponses(profiles []user.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ToProfileResponse(p))
	}
	return out
}
