package mentorship_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mentorshipapp "github.com/lllypuk/talentnet/internal/application/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/filter"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

func TestGetRequestsUseCase_ByMentee(t *testing.T) {
	// Arrange
	f := newFixture()
	a := f.mustRequest(1, 2, "Java help")
	f.mustRequest(2, 3, "Python help")

	// Act
	res, err := f.list.Execute(context.Background(), mentorshipapp.GetRequestsQuery{
		Criteria: mentorship.RequestCriteria{MenteeID: filter.Ptr[user.ID](1)},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, res.Requests, 1)
	assert.Equal(t, a.ID(), res.Requests[0].ID())
}

func TestGetRequestsUseCase_ByStatusAndDescription(t *testing.T) {
	// Arrange
	f := newFixture()
	a := f.mustRequest(1, 2, "Java help")
	b := f.mustRequest(2, 3, "Java review")
	f.mustRequest(3, 1, "Python help")
	_, err := f.accept.Execute(context.Background(), mentorshipapp.AcceptRequestCommand{RequestID: b.ID()})
	require.NoError(t, err)

	// Act
	pending, errPending := f.list.Execute(context.Background(), mentorshipapp.GetRequestsQuery{
		Criteria: mentorship.RequestCriteria{
			Description: filter.Ptr("Java"),
			Status:      filter.Ptr(mentorship.StatusPending),
		},
	})

	// Assert
	require.NoError(t, errPending)
	require.Len(t, pending.Requests, 1)
	assert.Equal(t, a.ID(), pending.Requests[0].ID())
}

func TestGetRequestsUseCase_EmptyResultIsNotAnError(t *testing.T) {
	f := newFixture()
	f.mustRequest(1, 2, "Java help")

	res, err := f.list.Execute(context.Background(), mentorshipapp.GetRequestsQuery{
		Criteria: mentorship.RequestCriteria{MentorID: filter.Ptr[user.ID](3)},
	})

	require.NoError(t, err)
	assert.Empty(t, res.Requests)
}

func TestGetRequestUseCase(t *testing.T) {
	f := newFixture()
	a := f.mustRequest(1, 2, "Java help")

	res, err := f.get.Execute(context.Background(), mentorshipapp.GetRequestQuery{RequestID: a.ID()})

	require.NoError(t, err)
	assert.Equal(t, "Java help", res.Value.Description())
}
