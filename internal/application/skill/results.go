package skill

import (
	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// Result - result операции с одним навыком
type Result struct {
	appcore.Result[*skill.Skill]
}

// OfferResult - созданное предложение
type OfferResult struct {
	appcore.Result[*skill.Offer]
}

// ListResult - список навыков
type ListResult struct {
	Skills []*skill.Skill
	// Guarantors - авторы предложений, по которым навык получен; только для навыков пользователя
	Guarantors map[skill.ID][]user.ID
}

// CandidatesResult - предложенные навыки с числом предложений
type CandidatesResult struct {
	Candidates []skill.Candidate
}
