package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// decodeAll drains cursor and converts every document.
// T - type dokumenta for dekodirovaniya
// R - type result (domain object)
//
// returns:
// - srez domain obektov (never nil)
// - error at problemah s kursorom
func decodeAll[T any, R any](
	ctx context.Context,
	cursor *mongo.Cursor,
	decoder func(*T) (R, error),
) ([]R, error) {
	defer cursor.Close(ctx)

	results := make([]R, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}

		item, err := decoder(&doc)
		if err != nil {
			return nil, fmt.Errorf("convert document: %w", err)
		}

		results = append(results, item)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return results, nil
}
