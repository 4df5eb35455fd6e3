package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// SkillRepository stores skills and the skills each user holds
type SkillRepository struct {
	mu         sync.RWMutex
	nextID     skill.ID
	skills     map[skill.ID]*skill.Skill
	order      []skill.ID
	owned      map[user.ID][]skill.ID
	guarantors map[user.ID]map[skill.ID][]user.ID
}

// NewSkillRepository creates a new in-memory skill repository
func NewSkillRepository() *SkillRepository {
	return &SkillRepository{
		skills:     make(map[skill.ID]*skill.Skill),
		owned:      make(map[user.ID][]skill.ID),
		guarantors: make(map[user.ID]map[skill.ID][]user.ID),
	}
}

// Create assigns the next id; a duplicate title fails with errs.ErrAlreadyExists
func (r *SkillRepository) Create(_ context.Context, s *skill.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.skills {
		if existing.Title() == s.Title() {
			return errs.ErrAlreadyExists
		}
	}
	r.nextID++
	s.AssignID(r.nextID)
	r.skills[s.ID()] = skill.Reconstruct(s.ID(), s.Title())
	r.order = append(r.order, s.ID())
	return nil
}

// FindByID returns the skill or errs.ErrNotFound
func (r *SkillRepository) FindByID(_ context.Context, id skill.ID) (*skill.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.skills[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return skill.Reconstruct(s.ID(), s.Title()), nil
}

// FindByIDs returns the known skills among ids, keyed by id
func (r *SkillRepository) FindByIDs(_ context.Context, ids []skill.ID) (map[skill.ID]*skill.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[skill.ID]*skill.Skill, len(ids))
	for _, id := range ids {
		if s, ok := r.skills[id]; ok {
			out[id] = skill.Reconstruct(s.ID(), s.Title())
		}
	}
	return out, nil
}

// FindByUser returns the skills userID holds, in acquisition order
func (r *SkillRepository) FindByUser(_ context.Context, userID user.ID) ([]*skill.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.owned[userID]
	out := make([]*skill.Skill, 0, len(ids))
	for _, id := range ids {
		s := r.skills[id]
		out = append(out, skill.Reconstruct(s.ID(), s.Title()))
	}
	return out, nil
}

// UserHasSkill checks if userID holds skillID
func (r *SkillRepository) UserHasSkill(_ context.Context, userID user.ID, skillID skill.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.owned[userID], skillID), nil
}

// AssignToUser records that userID holds skillID; a repeated assignment fails with errs.ErrAlreadyExists
func (r *SkillRepository) AssignToUser(
	_ context.Context,
	userID user.ID,
	skillID skill.ID,
	guarantors []user.ID,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.owned[userID], skillID) {
		return errs.ErrAlreadyExists
	}
	r.owned[userID] = append(r.owned[userID], skillID)
	if r.guarantors[userID] == nil {
		r.guarantors[userID] = make(map[skill.ID][]user.ID)
	}
	r.guarantors[userID][skillID] = slices.Clone(guarantors)
	return nil
}

// GuarantorsOf returns who vouched for userID holding skillID
func (r *SkillRepository) GuarantorsOf(_ context.Context, userID user.ID, skillID skill.ID) ([]user.ID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.guarantors[userID][skillID]), nil
}

// OfferRepository stores skill offers in creation order
type OfferRepository struct {
	mu     sync.RWMutex
	offers []*skill.Offer
}

// NewOfferRepository creates a new in-memory offer repository
func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

// Create saves an offer
func (r *OfferRepository) Create(_ context.Context, o *skill.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers = append(r.offers, o)
	return nil
}

// FindByReceiver returns all offers made to receiverID
func (r *OfferRepository) FindByReceiver(_ context.Context, receiverID user.ID) ([]*skill.Offer, error) {
	return r.find(func(o *skill.Offer) bool { return o.ReceiverID() == receiverID }), nil
}

// FindByReceiverAndSkill returns offers of skillID made to receiverID
func (r *OfferRepository) FindByReceiverAndSkill(
	_ context.Context,
	receiverID user.ID,
	skillID skill.ID,
) ([]*skill.Offer, error) {
	return r.find(func(o *skill.Offer) bool {
		return o.ReceiverID() == receiverID && o.SkillID() == skillID
	}), nil
}

// DeleteByReceiverAndSkill removes the offers and returns how many were removed
func (r *OfferRepository) DeleteByReceiverAndSkill(
	_ context.Context,
	receiverID user.ID,
	skillID skill.ID,
) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	before := len(r.offers)
	r.offers = slices.DeleteFunc(r.offers, func(o *skill.Offer) bool {
		return o.ReceiverID() == receiverID && o.SkillID() == skillID
	})
	return before - len(r.offers), nil
}

func (r *OfferRepository) find(match func(*skill.Offer) bool) []*skill.Offer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*skill.Offer, 0)
	for _, o := range r.offers {
		if match(o) {
			out = append(out, o)
		}
	}
	return out
}
