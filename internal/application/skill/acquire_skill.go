package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// DefaultMinOffers минимальное число предложений для получения навыка
const DefaultMinOffers = 1

// AcquireSkillFromOffersUseCase - use case для получения навыка по предложениям
type AcquireSkillFromOffersUseCase struct {
	appcore.BaseUseCase

	skills    SkillRepository
	offers    OfferRepository
	tx        appcore.TxManager
	minOffers int
}

// NewAcquireSkillFromOffersUseCase создает новый AcquireSkillFromOffersUseCase.
// minOffers <= 0 means DefaultMinOffers.
func NewAcquireSkillFromOffersUseCase(
	skills SkillRepository,
	offers OfferRepository,
	tx appcore.TxManager,
	minOffers int,
	opts ...appcore.Option,
) *AcquireSkillFromOffersUseCase {
	if minOffers <= 0 {
		minOffers = DefaultMinOffers
	}
	return &AcquireSkillFromOffersUseCase{
		BaseUseCase: appcore.NewBaseUseCase(opts...),
		skills:      skills,
		offers:      offers,
		tx:          tx,
		minOffers:   minOffers,
	}
}

// Execute assigns the skill to the user and consumes its offers
func (uc *AcquireSkillFromOffersUseCase) Execute(ctx context.Context, cmd AcquireSkillCommand) (Result, error) {
	if err := uc.ValidateContext(ctx); err != nil {
		return Result{}, uc.WrapError("validate context", err)
	}
	if err := appcore.ValidateUserID("user_id", cmd.UserID); err != nil {
		return Result{}, err
	}

	var (
		acquired   *skill.Skill
		guarantors []user.ID
	)
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		s, errFind := findSkill(ctx, uc.skills, cmd.SkillID)
		if errFind != nil {
			return errFind
		}

		owned, errOwned := uc.skills.UserHasSkill(ctx, cmd.UserID, cmd.SkillID)
		if errOwned != nil {
			return uc.WrapError("check user skill", errOwned)
		}
		if owned {
			return alreadyOwned(cmd)
		}

		offers, errOffers := uc.offers.FindByReceiverAndSkill(ctx, cmd.UserID, cmd.SkillID)
		if errOffers != nil {
			return uc.WrapError("load offers", errOffers)
		}
		if len(offers) < uc.minOffers {
			return appcore.NewNotFoundError(
				"skill offers",
				fmt.Sprintf("skill %d for user %d", cmd.SkillID, cmd.UserID),
				ErrNoOffers,
			)
		}

		guarantors = skill.Guarantors(offers)
		if errAssign := uc.skills.AssignToUser(ctx, cmd.UserID, cmd.SkillID, guarantors); errAssign != nil {
			if errors.Is(errAssign, errs.ErrAlreadyExists) {
				return alreadyOwned(cmd)
			}
			return uc.WrapError("assign skill", errAssign)
		}

		if _, errDelete := uc.offers.DeleteByReceiverAndSkill(ctx, cmd.UserID, cmd.SkillID); errDelete != nil {
			return uc.WrapError("consume offers", errDelete)
		}

		acquired = s
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	now := uc.Now()
	uc.Publish(ctx, skill.NewAcquired(cmd.SkillID, cmd.UserID, guarantors, now, uc.Metadata(ctx, cmd.UserID.String())))
	uc.Logger().InfoContext(ctx, "skill acquired",
		slog.Int64("skill_id", int64(cmd.SkillID)),
		slog.Int64("user_id", int64(cmd.UserID)),
		slog.Int("guarantors", len(guarantors)),
	)

	return Result{Result: appcore.Result[*skill.Skill]{Value: acquired}}, nil
}

func alreadyOwned(cmd AcquireSkillCommand) error {
	return appcore.NewConflictError(
		"user skill",
		fmt.Sprintf("user %d already has skill %d", cmd.UserID, cmd.SkillID),
		ErrSkillAlreadyOwned,
	)
}
