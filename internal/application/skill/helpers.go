package skill

import (
	"context"
	"errors"
	"strconv"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/skill"
)

func findSkill(ctx context.Context, skills SkillRepository, id skill.ID) (*skill.Skill, error) {
	if !id.IsValid() {
		return nil, appcore.NewValidationError("skill_id", "must be positive")
	}
	s, err := skills.FindByID(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, appcore.NewNotFoundError("skill", strconv.FormatInt(int64(id), 10), ErrSkillNotFound)
	}
	return s, err
}
