package skill

import (
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// CreateSkillCommand - создание навыка
type CreateSkillCommand struct {
	Title string
}

func (c CreateSkillCommand) CommandName() string { return "CreateSkill" }

// OfferSkillCommand - author предлагает навык receiver
type OfferSkillCommand struct {
	SkillID    skill.ID
	ReceiverID user.ID
	AuthorID   user.ID
}

func (c OfferSkillCommand) CommandName() string { return "OfferSkill" }

// AcquireSkillCommand - пользователь принимает предложенный навык
type AcquireSkillCommand struct {
	SkillID skill.ID
	UserID  user.ID
}

func (c AcquireSkillCommand) CommandName() string { return "AcquireSkillFromOffers" }
