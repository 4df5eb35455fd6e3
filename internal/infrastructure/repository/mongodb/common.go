package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/lllypuk/talentnet/internal/domain/errs"
)

// HandleMongoError преобразует error MongoDB in доменную error.
// returns:
//   - nil if err == nil
//   - errs.ErrNotFound if документ not найден
//   - errs.ErrAlreadyExists if нарушен unique constraint
//   - wrapped error for остальных случаев
func HandleMongoError(err error, resourceType string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrAlreadyExists
	}

	return fmt.Errorf("failed to operate on %s: %w", resourceType, err)
}

// UpsertOptions returns стандартные опции for upsert операции.
func UpsertOptions() *options.UpdateOneOptionsBuilder {
	return options.UpdateOne().SetUpsert(true)
}

// CountFilter performs подсчет документов с указанным фильтром.
func CountFilter(ctx context.Context, coll *mongo.Collection, filter bson.M) (int, error) {
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// existsFilter checks if at least one document matches filter
func existsFilter(ctx context.Context, coll *mongo.Collection, filter bson.M, resourceType string) (bool, error) {
	count, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, HandleMongoError(err, resourceType)
	}
	return count > 0, nil
}

// Option configures the logger shared by all repositories in the package.
type Option func(*base)

// WithLogger sets the logger for a repository.
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

type base struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

func newBase(collection *mongo.Collection, opts []Option) base {
	b := base{collection: collection, logger: slog.Default()}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// logFailure logs unexpected storage errors. Not found and duplicates are expected outcomes.
func (b *base) logFailure(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if err == nil || errors.Is(err, mongo.ErrNoDocuments) || mongo.IsDuplicateKeyError(err) {
		return
	}
	args := make([]any, 0, len(attrs)+1)
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.String("error", err.Error()))
	b.logger.ErrorContext(ctx, msg, args...)
}
