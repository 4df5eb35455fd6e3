package httphandler

import (
	"context"

	"github.com/labstack/echo/v4"

	followapp "github.com/lllypuk/talentnet/internal/application/follow"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
)

// FollowResponse represents a follow edge in API responses.
type FollowResponse struct {
	FollowerID int64  `json:"follower_id"`
	FolloweeID int64  `json:"followee_id"`
	CreatedAt  string `json:"created_at"`
}

// CountResponse wraps a follower or following count.
type CountResponse struct {
	Count int `json:"count"`
}

// FollowService defines the follow graph operations used by FollowHandler.
// Declared on the consumer side.
type FollowService interface {
	Follow(ctx context.Context, cmd followapp.FollowUserCommand) (followapp.Result, error)
	Unfollow(ctx context.Context, cmd followapp.UnfollowUserCommand) (followapp.Result, error)
	ListFollowers(ctx context.Context, query followapp.ListFollowersQuery) (followapp.ProfilesResult, error)
	ListFollowing(ctx context.Context, query followapp.ListFollowingQuery) (followapp.ProfilesResult, error)
	CountFollowers(ctx context.Context, query followapp.CountFollowersQuery) (followapp.CountResult, error)
	CountFollowing(ctx context.Context, query followapp.CountFollowingQuery) (followapp.CountResult, error)
}

// FollowHandler handles follow graph requests.
type FollowHandler struct {
	follows FollowService
}

// NewFollowHandler creates a new FollowHandler.
func NewFollowHandler(follows FollowService) *FollowHandler {
	return &FollowHandler{follows: follows}
}

// RegisterRoutes registers follow routes with the router.
func (h *FollowHandler) RegisterRoutes(r *httpserver.Router) {
	users := r.API().Group("/users/:id")
	users.POST("/following/:target_id", h.Follow)
	users.DELETE("/following/:target_id", h.Unfollow)
	users.GET("/followers", h.ListFollowers)
	users.GET("/followers/count", h.CountFollowers)
	users.GET("/following", h.ListFollowing)
	users.GET("/following/count", h.CountFollowing)
}

// Follow handles POST /api/v1/users/:id/following/:target_id.
func (h *FollowHandler) Follow(c echo.Context) error {
	followerID, followeeID, err := edgeParams(c)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.follows.Follow(c.Request().Context(), followapp.FollowUserCommand{
		FollowerID: followerID,
		FolloweeID: followeeID,
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondCreated(c, toFollowResponse(result.Value))
}

// Unfollow handles DELETE /api/v1/users/:id/following/:target_id.
func (h *FollowHandler) Unfollow(c echo.Context) error {
	followerID, followeeID, err := edgeParams(c)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	if _, err = h.follows.Unfollow(c.Request().Context(), followapp.UnfollowUserCommand{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}); err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondNoContent(c)
}

// ListFollowers handles GET /api/v1/users/:id/followers.
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	userID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.follows.ListFollowers(c.Request().Context(), followapp.ListFollowersQuery{
		UserID:   userID,
		Criteria: profileCriteria(c),
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, toProfileResponses(result.Profiles))
}

// ListFollowing handles GET /api/v1/users/:id/following.
func (h *FollowHandler) ListFollowing(c echo.Context) error {
	userID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.follows.ListFollowing(c.Request().Context(), followapp.ListFollowingQuery{
		UserID:   userID,
		Criteria: profileCriteria(c),
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, toProfileResponses(result.Profiles))
}

// CountFollowers handles GET /api/v1/users/:id/followers/count.
func (h *FollowHandler) CountFollowers(c echo.Context) error {
	userID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.follows.CountFollowers(c.Request().Context(), followapp.CountFollowersQuery{UserID: userID})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, CountResponse{Count: result.Count})
}

// CountFollowing handles GET /api/v1/users/:id/following/count.
func (h *FollowHandler) CountFollowing(c echo.Context) error {
	userID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.follows.CountFollowing(c.Request().Context(), followapp.CountFollowingQuery{UserID: userID})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, CountResponse{Count: result.Count})
}

func edgeParams(c echo.Context) (user.ID, user.ID, error) {
	followerID, err := pathUserID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	followeeID, err := pathUserID(c, "target_id")
	if err != nil {
		return 0, 0, err
	}
	return followerID, followeeID, nil
}

func profileCriteria(c echo.Context) user.ProfileCriteria {
	return user.ProfileCriteria{
		Name:  optionalQuery(c, "name"),
		Email: optionalQuery(c, "email"),
		City:  optionalQuery(c, "city"),
		Phone: optionalQuery(c, "phone"),
	}
}

func toFollowResponse(e follow.Edge) FollowResponse {
	return FollowResponse{
		FollowerID: int64(e.FollowerID()),
		FolloweeID: int64(e.FolloweeID()),
		CreatedAt:  formatTime(e.CreatedAt()),
	}
}
