package follow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	followapp "github.com/lllypuk/talentnet/internal/application/follow"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

func TestUnfollowUserUseCase_FollowUnfollowUnfollow(t *testing.T) {
	// Arrange
	f := newFixture(t)
	followUC := followapp.NewFollowUserUseCase(f.repo, f.users, appcore.NoopTxManager{}, f.opts...)
	unfollowUC := followapp.NewUnfollowUserUseCase(f.repo, appcore.NoopTxManager{}, f.opts...)
	ctx := context.Background()

	// Act
	_, errFollow := followUC.Execute(ctx, followapp.FollowUserCommand{FollowerID: 1, FolloweeID: 2})
	_, errFirst := unfollowUC.Execute(ctx, followapp.UnfollowUserCommand{FollowerID: 1, FolloweeID: 2})
	_, errSecond := unfollowUC.Execute(ctx, followapp.UnfollowUserCommand{FollowerID: 1, FolloweeID: 2})

	// Assert
	require.NoError(t, errFollow)
	require.NoError(t, errFirst)
	require.ErrorIs(t, errSecond, errs.ErrNotFound)
	require.ErrorIs(t, errSecond, followapp.ErrNotFollowing)
	assert.Equal(t, "follow edge with ID 1 -> 2 not found", errSecond.Error())

	exists, err := f.repo.Exists(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, []string{follow.EventTypeCreated, follow.EventTypeRemoved}, f.bus.types())
}

func TestUnfollowUserUseCase_DeleteRaceIsNotFound(t *testing.T) {
	// Arrange
	f := newFixture(t)
	repo := &failingRepo{FollowRepository: f.repo}
	uc := followapp.NewUnfollowUserUseCase(&existsAlways{repo}, appcore.NoopTxManager{}, f.opts...)

	// Act
	_, err := uc.Execute(context.Background(), followapp.UnfollowUserCommand{FollowerID: 1, FolloweeID: 2})

	// Assert
	require.ErrorIs(t, err, followapp.ErrNotFollowing)
}

func TestUnfollowUserUseCase_StorageFailure(t *testing.T) {
	f := newFixture(t)
	repo := &failingRepo{FollowRepository: f.repo, existsErr: errStorage}
	uc := followapp.NewUnfollowUserUseCase(repo, appcore.NoopTxManager{}, f.opts...)

	_, err := uc.Execute(context.Background(), followapp.UnfollowUserCommand{FollowerID: 1, FolloweeID: 2})

	require.ErrorIs(t, err, errStorage)
	assert.False(t, appcore.IsNotFound(err))
}

// existsAlways имитирует гонку: проверка видит связь, которой уже нет
type existsAlways struct {
	*failingRepo
}

func (e *existsAlways) Exists(context.Context, user.ID, user.ID) (bool, error) {
	return true, nil
}
