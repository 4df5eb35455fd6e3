package user

import (
	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// Result - result операции с одним профилем
type Result struct {
	appcore.Result[user.Profile]
}

func newResult(p user.Profile) Result {
	return Result{Result: appcore.Result[user.Profile]{Value: p}}
}
