package skill

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/skill"
)

// CreateSkillUseCase - use case для создания навыка
type CreateSkillUseCase struct {
	appcore.BaseUseCase

	skills SkillRepository
}

// NewCreateSkillUseCase создает новый CreateSkillUseCase
func NewCreateSkillUseCase(skills SkillRepository, opts ...appcore.Option) *CreateSkillUseCase {
	return &CreateSkillUseCase{BaseUseCase: appcore.NewBaseUseCase(opts...), skills: skills}
}

// Execute выполняет создание навыка
func (uc *CreateSkillUseCase) Execute(ctx context.Context, cmd CreateSkillCommand) (Result, error) {
	s, err := skill.NewSkill(cmd.Title)
	if err != nil {
		return Result{}, appcore.NewValidationErrorFrom("title", err)
	}

	if err = uc.skills.Create(ctx, s); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return Result{}, appcore.NewConflictError("skill", "skill '"+s.Title()+"' already exists", ErrSkillExists)
		}
		return Result{}, uc.WrapError("create skill", err)
	}

	uc.Logger().InfoContext(ctx, "skill created", slog.Int64("skill_id", int64(s.ID())), slog.String("title", s.Title()))
	return Result{Result: appcore.Result[*skill.Skill]{Value: s}}, nil
}
