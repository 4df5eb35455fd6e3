package follow_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/infrastructure/repository/memory"
)

// recordingBus запоминает опубликованные события
type recordingBus struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (b *recordingBus) Publish(_ context.Context, evt event.DomainEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.EventType())
	}
	return out
}

// failingRepo оборачивает репозиторий и подменяет ответы
type failingRepo struct {
	*memory.FollowRepository

	existsErr     error
	forceNotFound bool
	insertErr     error
}

func (r *failingRepo) Exists(ctx context.Context, a, b user.ID) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	if r.forceNotFound {
		return false, nil
	}
	return r.FollowRepository.Exists(ctx, a, b)
}

func (r *failingRepo) Insert(ctx context.Context, edge follow.Edge) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	return r.FollowRepository.Insert(ctx, edge)
}

var errStorage = errors.New("storage unavailable")

type fixture struct {
	users *memory.UserRepository
	repo  *memory.FollowRepository
	bus   *recordingBus
	opts  []appcore.Option
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	profiles := []user.Profile{
		user.Reconstruct(1, "alice", "alice@example.com", "London", "111", true),
		user.Reconstruct(2, "bob", "bob@example.com", "Paris", "222", true),
		user.Reconstruct(3, "carol", "carol@mail.org", "London", "", true),
		user.Reconstruct(4, "dave", "", "Berlin", "444", true),
	}
	users := memory.NewUserRepository(profiles...)
	bus := &recordingBus{}
	return &fixture{
		users: users,
		repo:  memory.NewFollowRepository(users),
		bus:   bus,
		opts: []appcore.Option{
			appcore.WithEventBus(bus),
			appcore.WithClock(func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }),
		},
	}
}

func (f *fixture) follow(t *testing.T, follower, followee user.ID) {
	t.Helper()
	edge, err := follow.NewEdge(follower, followee, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.repo.Insert(context.Background(), edge))
}

func usernames(ps []user.Profile) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Username())
	}
	return out
}
