package skill

import (
	"context"
	"fmt"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/skill"
)

// OfferSkillUseCase - use case для предложения навыка пользователю
type OfferSkillUseCase struct {
	appcore.BaseUseCase

	skills SkillRepository
	offers OfferRepository
	users  appcore.UserDirectory
}

// NewOfferSkillUseCase создает новый OfferSkillUseCase
func NewOfferSkillUseCase(
	skills SkillRepository,
	offers OfferRepository,
	users appcore.UserDirectory,
	opts ...appcore.Option,
) *OfferSkillUseCase {
	return &OfferSkillUseCase{
		BaseUseCase: appcore.NewBaseUseCase(opts...),
		skills:      skills,
		offers:      offers,
		users:       users,
	}
}

// Execute выполняет предложение
func (uc *OfferSkillUseCase) Execute(ctx context.Context, cmd OfferSkillCommand) (OfferResult, error) {
	if err := appcore.ValidateUserID("receiver_id", cmd.ReceiverID); err != nil {
		return OfferResult{}, err
	}
	if err := appcore.ValidateUserID("author_id", cmd.AuthorID); err != nil {
		return OfferResult{}, err
	}

	offer, err := skill.NewOffer(cmd.SkillID, cmd.ReceiverID, cmd.AuthorID, uc.Now())
	if err != nil {
		return OfferResult{}, appcore.NewValidationErrorFrom("author_id", err)
	}

	if _, err = findSkill(ctx, uc.skills, cmd.SkillID); err != nil {
		return OfferResult{}, err
	}
	if err = appcore.RequireUsers(ctx, uc.users, cmd.ReceiverID, cmd.AuthorID); err != nil {
		return OfferResult{}, err
	}

	owned, err := uc.skills.UserHasSkill(ctx, cmd.ReceiverID, cmd.SkillID)
	if err != nil {
		return OfferResult{}, uc.WrapError("check user skill", err)
	}
	if owned {
		return OfferResult{}, appcore.NewConflictError(
			"skill offer",
			fmt.Sprintf("user %d already has skill %d", cmd.ReceiverID, cmd.SkillID),
			ErrSkillAlreadyOwned,
		)
	}

	if err = uc.offers.Create(ctx, offer); err != nil {
		return OfferResult{}, uc.WrapError("create offer", err)
	}

	uc.Publish(ctx, skill.NewOffered(offer, uc.Metadata(ctx, cmd.AuthorID.String())))
	return OfferResult{Result: appcore.Result[*skill.Offer]{Value: offer}}, nil
}
