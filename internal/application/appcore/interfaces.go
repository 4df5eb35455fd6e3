package appcore

import (
	"context"

	"github.com/lllypuk/talentnet/internal/domain/user"
)

// UseCase — базовый интерфейс для всех use cases
// TCommand - тип команды (входные данные)
// TResult - тип результата (выходные данные)
type UseCase[TCommand any, TResult any] interface {
	// Execute выполняет use case с заданной командой
	Execute(ctx context.Context, cmd TCommand) (TResult, error)
}

// Result — базовая структура результата
type Result[T any] struct {
	Value T
}

// TxManager — интерфейс для транзакционности.
// fn получает контекст, привязанный к транзакции; репозитории обязаны использовать именно его.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoopTxManager выполняет fn без транзакции
type NoopTxManager struct{}

// WithinTransaction calls fn with ctx unchanged
func (NoopTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// UserDirectory resolves user identities to profiles. It is owned outside this service.
type UserDirectory interface {
	// FindProfile returns the profile or an error matching errs.ErrNotFound
	FindProfile(ctx context.Context, id user.ID) (user.Profile, error)

	// Exists checks if a user with the given ID exists
	Exists(ctx context.Context, id user.ID) (bool, error)
}
