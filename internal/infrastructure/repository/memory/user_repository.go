package memory

import (
	"context"
	"sync"

	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// UserRepository is an in-memory user directory
type UserRepository struct {
	mu       sync.RWMutex
	profiles map[user.ID]user.Profile
}

// NewUserRepository creates a directory seeded with profiles
func NewUserRepository(profiles ...user.Profile) *UserRepository {
	r := &UserRepository{profiles: make(map[user.ID]user.Profile, len(profiles))}
	for _, p := range profiles {
		r.profiles[p.ID()] = p
	}
	return r
}

// Save creates or replaces a profile
func (r *UserRepository) Save(_ context.Context, p user.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID()] = p
	return nil
}

// FindProfile returns the profile or errs.ErrNotFound
func (r *UserRepository) FindProfile(_ context.Context, id user.ID) (user.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return user.Profile{}, errs.ErrNotFound
	}
	return p, nil
}

// Exists checks if a user with the given ID exists
func (r *UserRepository) Exists(_ context.Context, id user.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.profiles[id]
	return ok, nil
}

func (r *UserRepository) profilesOf(ids []user.ID) []user.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
