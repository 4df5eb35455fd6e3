package skill

import (
	"context"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// GetUserSkillsUseCase - навыки пользователя
type GetUserSkillsUseCase struct {
	appcore.BaseUseCase

	skills SkillRepository
}

// NewGetUserSkillsUseCase создает новый GetUserSkillsUseCase
func NewGetUserSkillsUseCase(skills SkillRepository, opts ...appcore.Option) *GetUserSkillsUseCase {
	return &GetUserSkillsUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), skills: skills}
}

// Execute выполняет поиск
func (uc *GetUserSkillsUseCase) Execute(ctx context.Context, q GetUserSkillsQuery) (ListResult, error) {
	if err := appcore.ValidateUserID("user_id", q.UserID); err != nil {
		return ListResult{}, err
	}
	skills, err := uc.skills.FindByUser(ctx, q.UserID)
	if err != nil {
		return ListResult{}, uc.WrapError("load user skills", err)
	}

	guarantors := make(map[skill.ID][]user.ID, len(skills))
	for _, s := range skills {
		ids, gErr := uc.skills.GuarantorsOf(ctx, q.UserID, s.ID())
		if gErr != nil {
			return ListResult{}, uc.WrapError("load guarantors", gErr)
		}
		guarantors[s.ID()] = ids
	}
	return ListResult{Skills: skills, Guarantors: guarantors}, nil
}

// GetOfferedSkillsUseCase - предложенные пользователю навыки, сгруппированные по навыку
type GetOfferedSkillsUseCase struct {
	appcore.BaseUseCase

	skills SkillRepository
	offers OfferRepository
}

// NewGetOfferedSkillsUseCase создает новый GetOfferedSkillsUseCase
func NewGetOfferedSkillsUseCase(
	skills SkillRepository,
	offers OfferRepository,
	opts ...appcore.Option,
) *GetOfferedSkillsUseCase {
	return &GetOfferedSkillsUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), skills: skills, offers: offers}
}

// Execute выполняет поиск
func (uc *GetOfferedSkillsUseCase) Execute(ctx context.Context, q GetOfferedSkillsQuery) (CandidatesResult, error) {
	if err := appcore.ValidateUserID("user_id", q.UserID); err != nil {
		return CandidatesResult{}, err
	}

	offers, err := uc.offers.FindByReceiver(ctx, q.UserID)
	if err != nil {
		return CandidatesResult{}, uc.WrapError("load offers", err)
	}

	ids := make([]skill.ID, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.SkillID())
	}
	skills, err := uc.skills.FindByIDs(ctx, ids)
	if err != nil {
		return CandidatesResult{}, uc.WrapError("load skills", err)
	}

	return CandidatesResult{Candidates: skill.GroupCandidates(offers, skills)}, nil
}
