package skill

import "github.com/lllypuk/talentnet/internal/domain/user"

// GetUserSkillsQuery - навыки пользователя
type GetUserSkillsQuery struct {
	UserID user.ID
}

func (q GetUserSkillsQuery) QueryName() string { return "GetUserSkills" }

// GetOfferedSkillsQuery - навыки, предложенные пользователю
type GetOfferedSkillsQuery struct {
	UserID user.ID
}

func (q GetOfferedSkillsQuery) QueryName() string { return "GetOfferedSkills" }
