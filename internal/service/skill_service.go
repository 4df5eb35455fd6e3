package service

import (
	"context"

	skillapp "github.com/lllypuk/talentnet/internal/application/skill"
	httphandler "github.com/lllypuk/talentnet/internal/handler/http"
)

// Compile-time assertion that SkillService implements httphandler.SkillService.
var _ httphandler.SkillService = (*SkillService)(nil)

// CreateSkillUseCase defines interface for use case creating a skill.
type CreateSkillUseCase interface {
	Execute(ctx context.Context, cmd skillapp.CreateSkillCommand) (skillapp.Result, error)
}

// OfferSkillUseCase defines interface for use case offering a skill.
type OfferSkillUseCase interface {
	Execute(ctx context.Context, cmd skillapp.OfferSkillCommand) (skillapp.OfferResult, error)
}

// AcquireSkillUseCase defines interface for use case acquiring an offered skill.
type AcquireSkillUseCase interface {
	Execute(ctx context.Context, cmd skillapp.AcquireSkillCommand) (skillapp.Result, error)
}

// GetUserSkillsUseCase defines interface for use case listing owned skills.
type GetUserSkillsUseCase interface {
	Execute(ctx context.Context, query skillapp.GetUserSkillsQuery) (skillapp.ListResult, error)
}

// GetOfferedSkillsUseCase defines interface for use case listing offered skills.
type GetOfferedSkillsUseCase interface {
	Execute(ctx context.Context, query skillapp.GetOfferedSkillsQuery) (skillapp.CandidatesResult, error)
}

// SkillService реализует httphandler.SkillService.
type SkillService struct {
	createUC     CreateSkillUseCase
	offerUC      OfferSkillUseCase
	acquireUC    AcquireSkillUseCase
	userSkillsUC GetUserSkillsUseCase
	offeredUC    GetOfferedSkillsUseCase
}

// SkillServiceConfig contains зависимости for SkillService.
type SkillServiceConfig struct {
	CreateUC     CreateSkillUseCase
	OfferUC      OfferSkillUseCase
	AcquireUC    AcquireSkillUseCase
	UserSkillsUC GetUserSkillsUseCase
	OfferedUC    GetOfferedSkillsUseCase
}

// NewSkillService создаёт New SkillService.
func NewSkillService(cfg SkillServiceConfig) *SkillService {
	return &SkillService{
		createUC:     cfg.CreateUC,
		offerUC:      cfg.OfferUC,
		acquireUC:    cfg.AcquireUC,
		userSkillsUC: cfg.UserSkillsUC,
		offeredUC:    cfg.OfferedUC,
	}
}

// CreateSkill создаёт навык.
func (s *SkillService) CreateSkill(ctx context.Context, cmd skillapp.CreateSkillCommand) (skillapp.Result, error) {
	return s.createUC.Execute(ctx, cmd)
}

// OfferSkill записывает предложение навыка.
func (s *SkillService) OfferSkill(
	ctx context.Context,
	cmd skillapp.OfferSkillCommand,
) (skillapp.OfferResult, error) {
	return s.offerUC.Execute(ctx, cmd)
}

// AcquireSkill присваивает навык при достаточном числе предложений.
func (s *SkillService) AcquireSkill(ctx context.Context, cmd skillapp.AcquireSkillCommand) (skillapp.Result, error) {
	return s.acquireUC.Execute(ctx, cmd)
}

// GetUserSkills returns навыки пользователя.
func (s *SkillService) GetUserSkills(
	ctx context.Context,
	query skillapp.GetUserSkillsQuery,
) (skillapp.ListResult, error) {
	return s.userSkillsUC.Execute(ctx, query)
}

// GetOfferedSkills returns предложенные навыки с числом предложений.
func (s *SkillService) GetOfferedSkills(
	ctx context.Context,
	query skillapp.GetOfferedSkillsQuery,
) (skillapp.CandidatesResult, error) {
	return s.offeredUC.Execute(ctx, query)
}
