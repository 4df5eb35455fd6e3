package mentorship_test

import (
	"context"
	"sync"
	"time"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	mentorshipapp "github.com/lllypuk/talentnet/internal/application/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/infrastructure/repository/memory"
)

var t0 = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

// fakeClock - управляемые часы
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

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

type fixture struct {
	clock *fakeClock
	bus   *recordingBus
	repo  *memory.MentorshipRepository
	users *memory.UserRepository

	request *mentorshipapp.RequestMentorshipUseCase
	accept  *mentorshipapp.AcceptRequestUseCase
	reject  *mentorshipapp.RejectRequestUseCase
	list    *mentorshipapp.GetRequestsUseCase
	get     *mentorshipapp.GetRequestUseCase
}

func newFixture() *fixture {
	f := &fixture{
		clock: &fakeClock{now: t0},
		bus:   &recordingBus{},
		repo:  memory.NewMentorshipRepository(),
		users: memory.NewUserRepository(
			user.Reconstruct(1, "alice", "", "", "", true),
			user.Reconstruct(2, "bob", "", "", "", true),
			user.Reconstruct(3, "carol", "", "", "", true),
		),
	}
	opts := []appcore.Option{appcore.WithClock(f.clock.Now), appcore.WithEventBus(f.bus)}
	tx := appcore.NoopTxManager{}

	f.request = mentorshipapp.NewRequestMentorshipUseCase(f.repo, f.users, tx, mentorship.NewCooldownPolicy(3), opts...)
	f.accept = mentorshipapp.NewAcceptRequestUseCase(f.repo, tx, opts...)
	f.reject = mentorshipapp.NewRejectRequestUseCase(f.repo, tx, opts...)
	f.list = mentorshipapp.NewGetRequestsUseCase(f.repo, opts...)
	f.get = mentorshipapp.NewGetRequestUseCase(f.repo, opts...)
	return f
}

func (f *fixture) mustRequest(menteeID, mentorID user.ID, description string) *mentorship.Request {
	res, err := f.request.Execute(context.Background(), mentorshipapp.RequestMentorshipCommand{
		MenteeID:    menteeID,
		MentorID:    mentorID,
		Description: description,
	})
	if err != nil {
		panic(err)
	}
	return res.Value
}
