package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/infrastructure/repository/memory"
)

var t0 = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

func seededUsers() *memory.UserRepository {
	return memory.NewUserRepository(
		user.Reconstruct(1, "alice", "", "", "", true),
		user.Reconstruct(2, "bob", "", "", "", true),
		user.Reconstruct(3, "carol", "", "", "", true),
	)
}

func mustEdge(t *testing.T, follower, followee user.ID) follow.Edge {
	t.Helper()
	e, err := follow.NewEdge(follower, followee, t0)
	require.NoError(t, err)
	return e
}

func TestFollowRepository_InsertDelete(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewFollowRepository(seededUsers())
	require.NoError(t, repo.Insert(ctx, mustEdge(t, 1, 2)))

	// Act
	dupErr := repo.Insert(ctx, mustEdge(t, 1, 2))
	reverseErr := repo.Insert(ctx, mustEdge(t, 2, 1))

	// Assert
	require.ErrorIs(t, dupErr, errs.ErrAlreadyExists)
	require.NoError(t, reverseErr)

	require.NoError(t, repo.Delete(ctx, 1, 2))
	require.ErrorIs(t, repo.Delete(ctx, 1, 2), errs.ErrNotFound)

	exists, err := repo.Exists(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFollowRepository_Listings(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewFollowRepository(seededUsers())
	require.NoError(t, repo.Insert(ctx, mustEdge(t, 2, 1)))
	require.NoError(t, repo.Insert(ctx, mustEdge(t, 3, 1)))
	require.NoError(t, repo.Insert(ctx, mustEdge(t, 1, 3)))
	require.NoError(t, repo.Insert(ctx, mustEdge(t, 99, 1)))

	// Act
	followers, err := repo.FollowersOf(ctx, 1)
	require.NoError(t, err)
	following, err := repo.FollowingOf(ctx, 1)
	require.NoError(t, err)
	count, err := repo.CountFollowers(ctx, 1)
	require.NoError(t, err)

	// Assert
	require.Len(t, followers, 2, "unknown users are skipped in listings")
	assert.Equal(t, "bob", followers[0].Username())
	assert.Equal(t, "carol", followers[1].Username())
	require.Len(t, following, 1)
	assert.Equal(t, user.ID(3), following[0].ID())
	assert.Equal(t, 3, count)
}

func TestMentorshipRepository_UpdateStatusIsConditional(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewMentorshipRepository()
	req, err := mentorship.NewRequest(1, 2, "help with Go", t0)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, req))

	accepted, err := repo.FindByID(ctx, req.ID())
	require.NoError(t, err)
	require.NoError(t, accepted.Accept(t0.Add(time.Hour)))

	rejected, err := repo.FindByID(ctx, req.ID())
	require.NoError(t, err)
	require.NoError(t, rejected.Reject("busy", t0.Add(time.Hour)))

	// Act
	firstErr := repo.UpdateStatus(ctx, accepted, mentorship.StatusPending)
	secondErr := repo.UpdateStatus(ctx, rejected, mentorship.StatusPending)

	// Assert
	require.NoError(t, firstErr)
	require.ErrorIs(t, secondErr, errs.ErrConcurrentModification)

	stored, err := repo.FindByID(ctx, req.ID())
	require.NoError(t, err)
	assert.Equal(t, mentorship.StatusAccepted, stored.Status())
}

func TestMentorshipRepository_FindLatestBetween(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewMentorshipRepository()
	older, err := mentorship.NewRequest(1, 2, "first", t0)
	require.NoError(t, err)
	newer, err := mentorship.NewRequest(1, 2, "second", t0.AddDate(0, 4, 0))
	require.NoError(t, err)
	reverse, err := mentorship.NewRequest(2, 1, "reverse", t0.AddDate(0, 5, 0))
	require.NoError(t, err)
	for _, r := range []*mentorship.Request{newer, older, reverse} {
		require.NoError(t, repo.Save(ctx, r))
	}

	// Act
	latest, err := repo.FindLatestBetween(ctx, 1, 2)
	_, missingErr := repo.FindLatestBetween(ctx, 1, 3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, newer.ID(), latest.ID())
	require.ErrorIs(t, missingErr, errs.ErrNotFound)
}

func TestMentorshipRepository_ReturnsCopies(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewMentorshipRepository()
	req, err := mentorship.NewRequest(1, 2, "copy", t0)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, req))

	// Act
	loaded, err := repo.FindByID(ctx, req.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.Accept(t0))

	// Assert
	again, err := repo.FindByID(ctx, req.ID())
	require.NoError(t, err)
	assert.Equal(t, mentorship.StatusPending, again.Status())
}

func TestSkillRepository(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewSkillRepository()
	goSkill, err := skill.NewSkill("Go")
	require.NoError(t, err)
	sqlSkill, err := skill.NewSkill("SQL")
	require.NoError(t, err)
	dup, err := skill.NewSkill("Go")
	require.NoError(t, err)

	// Act
	require.NoError(t, repo.Create(ctx, goSkill))
	require.NoError(t, repo.Create(ctx, sqlSkill))
	dupErr := repo.Create(ctx, dup)

	// Assert
	require.ErrorIs(t, dupErr, errs.ErrAlreadyExists)
	assert.Equal(t, skill.ID(1), goSkill.ID())
	assert.Equal(t, skill.ID(2), sqlSkill.ID())

	_, err = repo.FindByID(ctx, 42)
	require.ErrorIs(t, err, errs.ErrNotFound)

	byIDs, err := repo.FindByIDs(ctx, []skill.ID{2, 42})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)

	require.NoError(t, repo.AssignToUser(ctx, 1, sqlSkill.ID(), []user.ID{2}))
	require.ErrorIs(t, repo.AssignToUser(ctx, 1, sqlSkill.ID(), nil), errs.ErrAlreadyExists)

	owned, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "SQL", owned[0].Title())
}

func TestOfferRepository_DeleteByReceiverAndSkill(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewOfferRepository()
	for _, args := range []struct {
		skill    skill.ID
		receiver user.ID
		author   user.ID
	}{
		{1, 1, 2},
		{1, 1, 3},
		{2, 1, 2},
		{1, 2, 3},
	} {
		o, err := skill.NewOffer(args.skill, args.receiver, args.author, t0)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, o))
	}

	// Act
	removed, err := repo.DeleteByReceiverAndSkill(ctx, 1, 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	left, err := repo.FindByReceiver(ctx, 1)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, skill.ID(2), left[0].SkillID())

	other, err := repo.FindByReceiverAndSkill(ctx, 2, 1)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
