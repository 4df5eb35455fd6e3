package follow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	followapp "github.com/lllypuk/talentnet/internal/application/follow"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/filter"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

func TestListFollowersUseCase(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.follow(t, 1, 4)
	f.follow(t, 2, 4)
	f.follow(t, 3, 4)
	uc := followapp.NewListFollowersUseCase(f.repo)

	tests := []struct {
		name     string
		criteria user.ProfileCriteria
		want     []string
	}{
		{"no criteria", user.ProfileCriteria{}, []string{"alice", "bob", "carol"}},
		{"by city", user.ProfileCriteria{City: filter.Ptr("London")}, []string{"alice", "carol"}},
		{"by email domain", user.ProfileCriteria{Email: filter.Ptr("example.com")}, []string{"alice", "bob"}},
		{"phone excludes missing", user.ProfileCriteria{Phone: filter.Ptr("2")}, []string{"bob"}},
		{"combined", user.ProfileCriteria{City: filter.Ptr("London"), Name: filter.Ptr("car")}, []string{"carol"}},
		{"filter excludes everyone", user.ProfileCriteria{City: filter.Ptr("Tokyo")}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			result, err := uc.Execute(context.Background(), followapp.ListFollowersQuery{UserID: 4, Criteria: tt.criteria})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, usernames(result.Profiles))
		})
	}
}

func TestListFollowersUseCase_NoFollowersIsNotFound(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.follow(t, 4, 1)
	uc := followapp.NewListFollowersUseCase(f.repo)

	// Act
	_, err := uc.Execute(context.Background(), followapp.ListFollowersQuery{UserID: 4})

	// Assert
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.ErrorIs(t, err, followapp.ErrNoFollowers)
}

func TestListFollowingUseCase(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.follow(t, 1, 2)
	f.follow(t, 1, 3)
	f.follow(t, 1, 4)
	uc := followapp.NewListFollowingUseCase(f.repo)

	// Act
	result, err := uc.Execute(context.Background(), followapp.ListFollowingQuery{
		UserID:   1,
		Criteria: user.ProfileCriteria{Name: filter.Ptr("o")},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, usernames(result.Profiles))
}

func TestListFollowingUseCase_NoFolloweesIsNotFound(t *testing.T) {
	f := newFixture(t)
	uc := followapp.NewListFollowingUseCase(f.repo)

	_, err := uc.Execute(context.Background(), followapp.ListFollowingQuery{UserID: 1})

	require.ErrorIs(t, err, followapp.ErrNoFollowees)
	assert.Equal(t, "followees of user with ID 1 not found", err.Error())
}

func TestCountUseCases(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.follow(t, 1, 2)
	f.follow(t, 3, 2)
	f.follow(t, 2, 4)
	followers := followapp.NewCountFollowersUseCase(f.repo)
	following := followapp.NewCountFollowingUseCase(f.repo)
	ctx := context.Background()

	// Act
	nFollowers, errFollowers := followers.Execute(ctx, followapp.CountFollowersQuery{UserID: 2})
	nFollowing, errFollowing := following.Execute(ctx, followapp.CountFollowingQuery{UserID: 2})
	_, errZeroFollowers := followers.Execute(ctx, followapp.CountFollowersQuery{UserID: 1})
	_, errZeroFollowing := following.Execute(ctx, followapp.CountFollowingQuery{UserID: 4})

	// Assert
	require.NoError(t, errFollowers)
	require.NoError(t, errFollowing)
	assert.Equal(t, 2, nFollowers.Count)
	assert.Equal(t, 1, nFollowing.Count)
	require.ErrorIs(t, errZeroFollowers, followapp.ErrNoFollowers)
	require.ErrorIs(t, errZeroFollowing, followapp.ErrNoFollowees)
}

func TestCountAndListValidateIndependently(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.follow(t, 2, 1)
	count := followapp.NewCountFollowersUseCase(f.repo)
	list := followapp.NewListFollowersUseCase(f.repo)
	ctx := context.Background()

	// Act
	n, errCount := count.Execute(ctx, followapp.CountFollowersQuery{UserID: 1})
	listed, errList := list.Execute(ctx, followapp.ListFollowersQuery{
		UserID:   1,
		Criteria: user.ProfileCriteria{City: filter.Ptr("London")},
	})

	// Assert
	require.NoError(t, errCount)
	require.NoError(t, errList)
	assert.Equal(t, 1, n.Count)
	assert.Empty(t, listed.Profiles)
}
