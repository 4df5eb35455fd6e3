package appcore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

type stubDirectory struct {
	known map[user.ID]bool
	err   error
}

func (s stubDirectory) FindProfile(_ context.Context, id user.ID) (user.Profile, error) {
	if !s.known[id] {
		return user.Profile{}, errs.ErrNotFound
	}
	return user.Reconstruct(id, "u", "", "", "", true), nil
}

func (s stubDirectory) Exists(_ context.Context, id user.ID) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.known[id], nil
}

func TestRequireUsers(t *testing.T) {
	dir := stubDirectory{known: map[user.ID]bool{1: true, 2: true}}

	t.Run("all present", func(t *testing.T) {
		require.NoError(t, appcore.RequireUsers(context.Background(), dir, 1, 2))
	})

	t.Run("reports first missing in order", func(t *testing.T) {
		err := appcore.RequireUsers(context.Background(), dir, 1, 9, 8)

		require.ErrorIs(t, err, appcore.ErrActorNotFound)
		require.ErrorIs(t, err, errs.ErrNotFound)
		assert.Equal(t, "user with ID 9 not found", err.Error())
	})

	t.Run("directory failure", func(t *testing.T) {
		boom := errors.New("boom")
		err := appcore.RequireUsers(context.Background(), stubDirectory{err: boom}, 1)

		require.ErrorIs(t, err, boom)
		assert.False(t, appcore.IsNotFound(err))
	})
}
