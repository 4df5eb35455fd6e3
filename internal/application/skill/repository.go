package skill

import (
	"context"

	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// SkillRepository defines interface for skills and user skills
// interface declared on the consumer side (application layer)
type SkillRepository interface {
	// Create assigns an id and saves the skill. A duplicate title fails with errs.ErrAlreadyExists.
	Create(ctx context.Context, s *skill.Skill) error

	// FindByID returns the skill or errs.ErrNotFound
	FindByID(ctx context.Context, id skill.ID) (*skill.Skill, error)

	// FindByIDs returns the known skills among ids
	FindByIDs(ctx context.Context, ids []skill.ID) (map[skill.ID]*skill.Skill, error)

	// FindByUser returns the skills a user holds
	FindByUser(ctx context.Context, userID user.ID) ([]*skill.Skill, error)

	// UserHasSkill checks if the user holds the skill
	UserHasSkill(ctx context.Context, userID user.ID, skillID skill.ID) (bool, error)

	// AssignToUser records the skill for the user. A repeat fails with errs.ErrAlreadyExists.
	AssignToUser(ctx context.Context, userID user.ID, skillID skill.ID, guarantors []user.ID) error

	// GuarantorsOf returns who vouched for the user holding the skill
	GuarantorsOf(ctx context.Context, userID user.ID, skillID skill.ID) ([]user.ID, error)
}

// OfferRepository defines interface for skill offers
// interface declared on the consumer side (application layer)
type OfferRepository interface {
	// Create saves an offer
	Create(ctx context.Context, o *skill.Offer) error

	// FindByReceiver returns all offers made to the user
	FindByReceiver(ctx context.Context, receiverID user.ID) ([]*skill.Offer, error)

	// FindByReceiverAndSkill returns offers of one skill made to the user
	FindByReceiverAndSkill(ctx context.Context, receiverID user.ID, skillID skill.ID) ([]*skill.Offer, error)

	// DeleteByReceiverAndSkill removes those offers and returns how many were removed
	DeleteByReceiverAndSkill(ctx context.Context, receiverID user.ID, skillID skill.ID) (int, error)
}
