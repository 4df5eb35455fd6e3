package httphandler

import (
	"context"

	"github.com/labstack/echo/v4"

	skillapp "github.com/lllypuk/talentnet/internal/application/skill"
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
)

// CreateSkillRequest is the body of POST /skills.
type CreateSkillRequest struct {
	Title string `json:"title" validate:"notblank"`
}

// OfferSkillRequest is the body of POST /users/:id/skills/offers.
type OfferSkillRequest struct {
	SkillID  int64 `json:"skill_id" validate:"gt=0"`
	AuthorID int64 `json:"author_id" validate:"gt=0"`
}

// SkillResponse represents a skill in API responses.
type SkillResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// OwnedSkillResponse is a skill the user holds, with who vouched for it.
type OwnedSkillResponse struct {
	SkillResponse

	Guarantors []int64 `json:"guarantors"`
}

// CandidateResponse is an offered skill with the number of pending offers.
type CandidateResponse struct {
	Skill        SkillResponse `json:"skill"`
	OffersAmount int           `json:"offers_amount"`
}

// OfferResponse represents a skill offer in API responses.
type OfferResponse struct {
	ID         string `json:"id"`
	SkillID    int64  `json:"skill_id"`
	ReceiverID int64  `json:"receiver_id"`
	AuthorID   int64  `json:"author_id"`
	CreatedAt  string `json:"created_at"`
}

// SkillService defines the skill ledger operations used by SkillHandler.
// Declared on the consumer side.
type SkillService interface {
	CreateSkill(ctx context.Context, cmd skillapp.CreateSkillCommand) (skillapp.Result, error)
	OfferSkill(ctx context.Context, cmd skillapp.OfferSkillCommand) (skillapp.OfferResult, error)
	AcquireSkill(ctx context.Context, cmd skillapp.AcquireSkillCommand) (skillapp.Result, error)
	GetUserSkills(ctx context.Context, query skillapp.GetUserSkillsQuery) (skillapp.ListResult, error)
	GetOfferedSkills(ctx context.Context, query skillapp.GetOfferedSkillsQuery) (skillapp.CandidatesResult, error)
}

// SkillHandler handles skill ledger requests.
type SkillHandler struct {
	skills SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skills SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

// RegisterRoutes registers skill routes with the router.
func (h *SkillHandler) RegisterRoutes(r *httpserver.Router) {
	r.API().POST("/skills", h.Create)

	users := r.API().Group("/users/:id/skills")
	users.GET("", h.ListUserSkills)
	users.GET("/offers", h.ListOffered)
	users.POST("/offers", h.Offer)
	users.PUT("/:skill_id/acquire", h.Acquire)
}

// Create handles POST /api/v1/skills.
func (h *SkillHandler) Create(c echo.Context) error {
	var req CreateSkillRequest
	if err := httpserver.BindAndValidate(c, &req); err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.skills.CreateSkill(c.Request().Context(), skillapp.CreateSkillCommand{Title: req.Title})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondCreated(c, toSkillResponse(result.Value))
}

// ListUserSkills handles GET /api/v1/users/:id/skills.
func (h *SkillHandler) ListUserSkills(c echo.Context) error {
	userID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.skills.GetUserSkills(c.Request().Context(), skillapp.GetUserSkillsQuery{UserID: userID})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	out := make([]OwnedSkillResponse, 0, len(result.Skills))
	for _, s := range result.Skills {
		guarantors := make([]int64, 0, len(result.Guarantors[s.ID()]))
		for _, g := range result.Guarantors[s.ID()] {
			guarantors = append(guarantors, int64(g))
		}
		out = append(out, OwnedSkillResponse{SkillResponse: toSkillResponse(s), Guarantors: guarantors})
	}
	return httpserver.RespondOK(c, out)
}

// ListOffered handles GET /api/v1/users/:id/skills/offers.
func (h *SkillHandler) ListOffered(c echo.Context) error {
	userID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.skills.GetOfferedSkills(c.Request().Context(), skillapp.GetOfferedSkillsQuery{UserID: userID})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	out := make([]CandidateResponse, 0, len(result.Candidates))
	for _, cand := range result.Candidates {
		out = append(out, CandidateResponse{Skill: toSkillResponse(cand.Skill), OffersAmount: cand.OffersAmount})
	}
	return httpserver.RespondOK(c, out)
}

// Offer handles POST /api/v1/users/:id/skills/offers.
func (h *SkillHandler) Offer(c echo.Context) error {
	receiverID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	var req OfferSkillRequest
	if err = httpserver.BindAndValidate(c, &req); err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.skills.OfferSkill(c.Request().Context(), skillapp.OfferSkillCommand{
		SkillID:    skill.ID(req.SkillID),
		ReceiverID: receiverID,
		AuthorID:   user.ID(req.AuthorID),
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	o := result.Value
	return httpserver.RespondCreated(c, OfferResponse{
		ID:         o.ID().String(),
		SkillID:    int64(o.SkillID()),
		ReceiverID: int64(o.ReceiverID()),
		AuthorID:   int64(o.AuthorID()),
		CreatedAt:  formatTime(o.CreatedAt()),
	})
}

// Acquire handles PUT /api/v1/users/:id/skills/:skill_id/acquire.
func (h *SkillHandler) Acquire(c echo.Context) error {
	userID, err := pathUserID(c, "id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}
	skillID, err := pathSkillID(c, "skill_id")
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	result, err := h.skills.AcquireSkill(c.Request().Context(), skillapp.AcquireSkillCommand{
		SkillID: skillID,
		UserID:  userID,
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, toSkillResponse(result.Value))
}

func toSkillResponse(s *skill.Skill) SkillResponse {
	return SkillResponse{ID: int64(s.ID()), Title: s.Title()}
}
