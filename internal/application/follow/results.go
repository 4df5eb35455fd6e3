package follow

import (
	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// Result - result операции с одной подпиской
type Result struct {
	appcore.Result[follow.Edge]
}

// ProfilesResult - отфильтрованный список профилей
type ProfilesResult struct {
	Profiles []user.Profile
}

// CountResult - число связей
type CountResult struct {
	Count int
}
