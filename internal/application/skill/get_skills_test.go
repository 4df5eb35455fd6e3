package skill_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	skillapp "github.com/lllypuk/talentnet/internal/application/skill"
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

func TestGetOfferedSkillsUseCase_GroupsBySkill(t *testing.T) {
	// Arrange
	f := newFixture(0)
	goSkill := f.mustSkill("Go")
	sqlSkill := f.mustSkill("SQL")
	f.mustOffer(sqlSkill.ID(), 1, 2)
	f.mustOffer(goSkill.ID(), 1, 2)
	f.mustOffer(sqlSkill.ID(), 1, 3)

	// Act
	res, err := f.offered.Execute(context.Background(), skillapp.GetOfferedSkillsQuery{UserID: 1})

	// Assert
	require.NoError(t, err)
	require.Len(t, res.Candidates, 2)
	assert.Equal(t, "SQL", res.Candidates[0].Skill.Title())
	assert.Equal(t, 2, res.Candidates[0].OffersAmount)
	assert.Equal(t, "Go", res.Candidates[1].Skill.Title())
	assert.Equal(t, 1, res.Candidates[1].OffersAmount)
}

func TestGetOfferedSkillsUseCase_Empty(t *testing.T) {
	// Arrange
	f := newFixture(0)

	// Act
	res, err := f.offered.Execute(context.Background(), skillapp.GetOfferedSkillsQuery{UserID: 3})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, res.Candidates)
}

func TestGetUserSkillsUseCase(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newFixture(0)
	s := f.mustSkill("Go")
	f.mustOffer(s.ID(), 2, 1)
	f.mustOffer(s.ID(), 2, 3)
	_, err := f.acquire.Execute(ctx, skillapp.AcquireSkillCommand{SkillID: s.ID(), UserID: 2})
	require.NoError(t, err)

	// Act
	res, err := f.owned.Execute(ctx, skillapp.GetUserSkillsQuery{UserID: 2})

	// Assert
	require.NoError(t, err)
	require.Len(t, res.Skills, 1)
	assert.Equal(t, s.ID(), res.Skills[0].ID())
	assert.Equal(t, []user.ID{1, 3}, res.Guarantors[s.ID()])
}

func TestGetUserSkillsUseCase_GuarantorsPerSkill(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newFixture(0)
	goSkill := f.mustSkill("Go")
	sqlSkill := f.mustSkill("SQL")
	f.mustOffer(goSkill.ID(), 1, 2)
	f.mustOffer(sqlSkill.ID(), 1, 3)
	for _, id := range []skill.ID{goSkill.ID(), sqlSkill.ID()} {
		_, err := f.acquire.Execute(ctx, skillapp.AcquireSkillCommand{SkillID: id, UserID: 1})
		require.NoError(t, err)
	}

	// Act
	res, err := f.owned.Execute(ctx, skillapp.GetUserSkillsQuery{UserID: 1})

	// Assert
	require.NoError(t, err)
	require.Len(t, res.Skills, 2)
	assert.Equal(t, map[skill.ID][]user.ID{
		goSkill.ID():  {2},
		sqlSkill.ID(): {3},
	}, res.Guarantors)
}

func TestGetUserSkillsUseCase_InvalidUser(t *testing.T) {
	// Arrange
	f := newFixture(0)

	// Act
	_, err := f.owned.Execute(context.Background(), skillapp.GetUserSkillsQuery{UserID: -1})

	// Assert
	require.Error(t, err)
	assert.True(t, appcore.IsValidation(err))
}
