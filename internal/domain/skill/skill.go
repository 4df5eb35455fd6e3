// Package skill models skills, offers of a skill to a user, and acquisition
// of a skill once it has been offered.
package skill

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

// MaxTitleLength максимальная длина названия навыка
const MaxTitleLength = 64

var (
	// ErrBlankTitle is returned for a skill without a title
	ErrBlankTitle = errors.New("skill title must not be blank")

	// ErrTitleTooLong is returned for a title over MaxTitleLength
	ErrTitleTooLong = errors.New("skill title is too long")

	// ErrSelfOffer is returned when a user offers a skill to themselves
	ErrSelfOffer = errors.New("user cannot offer a skill to themselves")
)

// ID is a numeric skill identifier
type ID int64

// IsValid reports whether id can reference a skill
func (id ID) IsValid() bool { return id > 0 }

// Skill is a named competence a user can hold
type Skill struct {
	id    ID
	title string
}

// NewSkill validates and normalizes the title. The id is assigned by storage.
func NewSkill(title string) (*Skill, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrBlankTitle
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("%w: at most %d characters", ErrTitleTooLong, MaxTitleLength)
	}
	return &Skill{title: title}, nil
}

// Reconstruct restores a skill from storage
func Reconstruct(id ID, title string) *Skill {
	return &Skill{id: id, title: title}
}

// AssignID sets the storage-generated id
func (s *Skill) AssignID(id ID) { s.id = id }

// ID returns the skill id
func (s *Skill) ID() ID { return s.id }

// Title returns the skill title
func (s *Skill) Title() string { return s.title }

// Offer is a suggestion, made by author, that receiver has a skill.
type Offer struct {
	id         uuid.UUID
	skillID    ID
	receiverID user.ID
	authorID   user.ID
	createdAt  time.Time
}

// NewOffer creates an offer
func NewOffer(skillID ID, receiverID, authorID user.ID, now time.Time) (*Offer, error) {
	if receiverID == authorID {
		return nil, fmt.Errorf("%w: user %d", ErrSelfOffer, receiverID)
	}
	return &Offer{
		id:         uuid.NewUUID(),
		skillID:    skillID,
		receiverID: receiverID,
		authorID:   authorID,
		createdAt:  now.UTC(),
	}, nil
}

// ReconstructOffer restores an offer from storage
func ReconstructOffer(id uuid.UUID, skillID ID, receiverID, authorID user.ID, createdAt time.Time) *Offer {
	return &Offer{id: id, skillID: skillID, receiverID: receiverID, authorID: authorID, createdAt: createdAt}
}

// ID returns the offer id
func (o *Offer) ID() uuid.UUID { return o.id }

// SkillID returns the offered skill
func (o *Offer) SkillID() ID { return o.skillID }

// ReceiverID returns the user the skill is offered to
func (o *Offer) ReceiverID() user.ID { return o.receiverID }

// AuthorID returns the user who made the offer
func (o *Offer) AuthorID() user.ID { return o.authorID }

// CreatedAt returns the offer time
func (o *Offer) CreatedAt() time.Time { return o.createdAt }

// Candidate is a skill offered to a user together with the number of offers.
type Candidate struct {
	Skill        *Skill
	OffersAmount int
}

// GroupCandidates folds offers into per-skill candidates, in order of first offer.
// Offers for skills missing from skills are skipped.
func GroupCandidates(offers []*Offer, skills map[ID]*Skill) []Candidate {
	index := make(map[ID]int)
	out := make([]Candidate, 0)
	for _, o := range offers {
		s, ok := skills[o.skillID]
		if !ok {
			continue
		}
		if i, seen := index[o.skillID]; seen {
			out[i].OffersAmount++
			continue
		}
		index[o.skillID] = len(out)
		out = append(out, Candidate{Skill: s, OffersAmount: 1})
	}
	return out
}

// Guarantors returns the distinct authors of offers, in order of first appearance.
func Guarantors(offers []*Offer) []user.ID {
	seen := make(map[user.ID]struct{}, len(offers))
	out := make([]user.ID, 0, len(offers))
	for _, o := range offers {
		if _, ok := seen[o.authorID]; ok {
			continue
		}
		seen[o.authorID] = struct{}{}
		out = append(out, o.authorID)
	}
	return out
}
