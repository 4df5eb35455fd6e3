package user

import (
	"context"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// Repository defines the profile store
// interface declared on the consumer side (application layer)
type Repository interface {
	appcore.UserDirectory

	// Save creates or replaces a profile
	Save(ctx context.Context, p user.Profile) error
}
