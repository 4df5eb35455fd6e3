package skill_test

import (
	"context"
	"sync"
	"time"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	skillapp "github.com/lllypuk/talentnet/internal/application/skill"
	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/infrastructure/repository/memory"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

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

func (b *recordingBus) last() event.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return nil
	}
	return b.events[len(b.events)-1]
}

type fixture struct {
	bus    *recordingBus
	skills *memory.SkillRepository
	offers *memory.OfferRepository
	users  *memory.UserRepository

	create  *skillapp.CreateSkillUseCase
	offer   *skillapp.OfferSkillUseCase
	acquire *skillapp.AcquireSkillFromOffersUseCase
	owned   *skillapp.GetUserSkillsUseCase
	offered *skillapp.GetOfferedSkillsUseCase
}

func newFixture(minOffers int) *fixture {
	f := &fixture{
		bus:    &recordingBus{},
		skills: memory.NewSkillRepository(),
		offers: memory.NewOfferRepository(),
		users: memory.NewUserRepository(
			user.Reconstruct(1, "alice", "", "", "", true),
			user.Reconstruct(2, "bob", "", "", "", true),
			user.Reconstruct(3, "carol", "", "", "", true),
		),
	}
	opts := []appcore.Option{
		appcore.WithEventBus(f.bus),
		appcore.WithClock(func() time.Time { return t0 }),
	}

	f.create = skillapp.NewCreateSkillUseCase(f.skills, opts...)
	f.offer = skillapp.NewOfferSkillUseCase(f.skills, f.offers, f.users, opts...)
	f.acquire = skillapp.NewAcquireSkillFromOffersUseCase(f.skills, f.offers, appcore.NoopTxManager{}, minOffers, opts...)
	f.owned = skillapp.NewGetUserSkillsUseCase(f.skills, opts...)
	f.offered = skillapp.NewGetOfferedSkillsUseCase(f.skills, f.offers, opts...)
	return f
}

func (f *fixture) mustSkill(title string) *skill.Skill {
	res, err := f.create.Execute(context.Background(), skillapp.CreateSkillCommand{Title: title})
	if err != nil {
		panic(err)
	}
	return res.Value
}

func (f *fixture) mustOffer(skillID skill.ID, receiverID, authorID user.ID) {
	_, err := f.offer.Execute(context.Background(), skillapp.OfferSkillCommand{
		SkillID:    skillID,
		ReceiverID: receiverID,
		AuthorID:   authorID,
	})
	if err != nil {
		panic(err)
	}
}
