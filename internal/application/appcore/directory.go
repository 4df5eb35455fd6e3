package appcore

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lllypuk/talentnet/internal/domain/user"
)

// ErrActorNotFound is the cause of a NotFoundError for an unresolvable user.
var ErrActorNotFound = errors.New("user not found")

// RequireUsers resolves every id through dir concurrently and fails with a
// NotFoundError naming the first missing user, in argument order.
// Must not be called with a transaction-bound context.
func RequireUsers(ctx context.Context, dir UserDirectory, ids ...user.ID) error {
	found := make([]bool, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			ok, err := dir.Exists(gctx, id)
			if err != nil {
				return fmt.Errorf("resolve user %d: %w", id, err)
			}
			found[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, ok := range found {
		if !ok {
			return NewNotFoundError("user", ids[i].String(), ErrActorNotFound)
		}
	}
	return nil
}
