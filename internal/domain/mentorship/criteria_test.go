package mentorship_test

import (
	"testing"

	guuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lllypuk/talentnet/internal/domain/filter"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

func sampleRequests() []*mentorship.Request {
	return []*mentorship.Request{
		mentorship.Reconstruct(requestID("a"), 1, 2, "Java help", mentorship.StatusPending, "", t0, t0),
		mentorship.Reconstruct(requestID("b"), 2, 3, "Python help", mentorship.StatusPending, "", t0, t0),
		mentorship.Reconstruct(requestID("c"), 1, 3, "Go review", mentorship.StatusAccepted, "", t0, t0),
		mentorship.Reconstruct(requestID("d"), 4, 2, "Java design", mentorship.StatusRejected, "busy", t0, t0),
	}
}

// requestID выдаёт стабильный uuid для короткой метки
func requestID(label string) uuid.UUID {
	return uuid.UUID(guuid.NewSHA1(guuid.NameSpaceOID, []byte(label)).String())
}

func requestIDs(rs []*mentorship.Request) []string {
	labels := make(map[uuid.UUID]string)
	for _, l := range []string{"a", "b", "c", "d"} {
		labels[requestID(l)] = l
	}
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, labels[r.ID()])
	}
	return out
}

func TestFilterRequests(t *testing.T) {
	tests := []struct {
		name     string
		criteria mentorship.RequestCriteria
		want     []string
	}{
		{"by mentee", mentorship.RequestCriteria{MenteeID: filter.Ptr[user.ID](1)}, []string{"a", "c"}},
		{"by mentor", mentorship.RequestCriteria{MentorID: filter.Ptr[user.ID](2)}, []string{"a", "d"}},
		{"by status", mentorship.RequestCriteria{Status: filter.Ptr(mentorship.StatusPending)}, []string{"a", "b"}},
		{"by description", mentorship.RequestCriteria{Description: filter.Ptr("Java")}, []string{"a", "d"}},
		{"description is case sensitive", mentorship.RequestCriteria{Description: filter.Ptr("java")}, []string{}},
		{
			"combined",
			mentorship.RequestCriteria{Description: filter.Ptr("help"), MenteeID: filter.Ptr[user.ID](2)},
			[]string{"b"},
		},
		{"empty criteria", mentorship.RequestCriteria{}, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requestIDs(mentorship.FilterRequests(sampleRequests(), tt.criteria)))
		})
	}
}

func TestRequestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, mentorship.RequestCriteria{}.IsEmpty())
	assert.False(t, mentorship.RequestCriteria{Status: filter.Ptr(mentorship.StatusAccepted)}.IsEmpty())
}
