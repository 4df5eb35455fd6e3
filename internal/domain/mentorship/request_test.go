package mentorship_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/domain/mentorship"
)

var t0 = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func newPending(t *testing.T) *mentorship.Request {
	t.Helper()
	req, err := mentorship.NewRequest(1, 2, "Java help", t0)
	require.NoError(t, err)
	return req
}

func TestNewRequest_Success(t *testing.T) {
	// Act
	req := newPending(t)

	// Assert
	assert.False(t, req.ID().IsZero())
	assert.EqualValues(t, 1, req.RequesterID())
	assert.EqualValues(t, 2, req.ReceiverID())
	assert.Equal(t, "Java help", req.Description())
	assert.Equal(t, mentorship.StatusPending, req.Status())
	assert.Empty(t, req.RejectionReason())
	assert.Equal(t, t0, req.CreatedAt())
	assert.Equal(t, t0, req.UpdatedAt())
}

func TestNewRequest_SelfRequest(t *testing.T) {
	_, err := mentorship.NewRequest(3, 3, "help", t0)
	require.ErrorIs(t, err, mentorship.ErrSelfRequest)
}

func TestNewRequest_BlankDescription(t *testing.T) {
	_, err := mentorship.NewRequest(1, 2, "  \t", t0)
	require.ErrorIs(t, err, mentorship.ErrBlankDescription)
}

func TestRequest_Accept(t *testing.T) {
	// Arrange
	req := newPending(t)
	later := t0.Add(time.Hour)

	// Act
	err := req.Accept(later)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, mentorship.StatusAccepted, req.Status())
	assert.Equal(t, later, req.UpdatedAt())
	assert.Empty(t, req.RejectionReason())
}

func TestRequest_Reject(t *testing.T) {
	// Arrange
	req := newPending(t)

	// Act
	err := req.Reject("no time this quarter", t0.Add(time.Hour))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, mentorship.StatusRejected, req.Status())
	assert.Equal(t, "no time this quarter", req.RejectionReason())
}

func TestRequest_RejectBlankReasonKeepsPending(t *testing.T) {
	req := newPending(t)

	err := req.Reject(" ", t0)

	require.ErrorIs(t, err, mentorship.ErrBlankReason)
	assert.Equal(t, mentorship.StatusPending, req.Status())
}

func TestRequest_TerminalStatesAreFinal(t *testing.T) {
	t.Run("accept then reject", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Accept(t0))

		err := req.Reject("changed my mind", t0)

		require.ErrorIs(t, err, mentorship.ErrAlreadyProcessed)
		assert.Equal(t, mentorship.StatusAccepted, req.Status())
		assert.Empty(t, req.RejectionReason())
	})

	t.Run("reject then accept", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Reject("busy", t0))

		err := req.Accept(t0)

		require.ErrorIs(t, err, mentorship.ErrAlreadyProcessed)
		assert.Equal(t, mentorship.StatusRejected, req.Status())
		assert.Equal(t, "busy", req.RejectionReason())
	})

	t.Run("accept twice", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Accept(t0))

		require.ErrorIs(t, req.Accept(t0), mentorship.ErrAlreadyProcessed)
	})
}

func TestStatus(t *testing.T) {
	s, err := mentorship.ParseStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, mentorship.StatusAccepted, s)

	_, err = mentorship.ParseStatus("DONE")
	require.Error(t, err)

	assert.True(t, mentorship.StatusPending.CanTransitionTo(mentorship.StatusRejected))
	assert.False(t, mentorship.StatusPending.CanTransitionTo(mentorship.StatusPending))
	assert.False(t, mentorship.StatusAccepted.CanTransitionTo(mentorship.StatusRejected))
}
