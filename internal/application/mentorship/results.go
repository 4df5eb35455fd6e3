package mentorship

import (
	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
)

// Result - result операции с одним запросом
type Result struct {
	appcore.Result[*mentorship.Request]
}

// ListResult - отфильтрованный список запросов
type ListResult struct {
	Requests []*mentorship.Request
}

func newResult(req *mentorship.Request) Result {
	return Result{Result: appcore.Result[*mentorship.Request]{Value: req}}
}
