package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TxManager runs use case writes inside a MongoDB session transaction.
// Requires a replica set; standalone servers should use appcore.NoopTxManager.
type TxManager struct {
	client *mongo.Client
	logger *slog.Logger
}

// NewTxManager creates a transaction manager over client
func NewTxManager(client *mongo.Client, logger *slog.Logger) *TxManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &TxManager{client: client, logger: logger}
}

// WithinTransaction calls fn with a context bound to the session. Errors from fn abort the transaction.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to start MongoDB session",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		return nil, fn(txCtx)
	})
	return err
}
