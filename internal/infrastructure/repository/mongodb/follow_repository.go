package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/follow"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// MongoFollowRepository stores follow edges, one document per (follower, followee).
// Uniqueness relies on the unique index from mongodb.CreateIndexes.
type MongoFollowRepository struct {
	base

	usersCollection string
}

// NewMongoFollowRepository creates a follow repository; usersCollection is joined for listings.
func NewMongoFollowRepository(collection *mongo.Collection, usersCollection string, opts ...Option) *MongoFollowRepository {
	return &MongoFollowRepository{base: newBase(collection, opts), usersCollection: usersCollection}
}

// Insert saves a new edge
func (r *MongoFollowRepository) Insert(ctx context.Context, edge follow.Edge) error {
	doc := followDocument{
		FollowerID: int64(edge.FollowerID()),
		FolloweeID: int64(edge.FolloweeID()),
		CreatedAt:  edge.CreatedAt(),
	}
	_, err := r.collection.InsertOne(ctx, doc)
	r.logFailure(ctx, "failed to insert follow edge", err, slog.String("edge", edge.Key()))
	return HandleMongoError(err, "follow")
}

// Delete removes the edge
func (r *MongoFollowRepository) Delete(ctx context.Context, followerID, followeeID user.ID) error {
	res, err := r.collection.DeleteOne(ctx, edgeFilter(followerID, followeeID))
	if err != nil {
		r.logFailure(ctx, "failed to delete follow edge", err, slog.String("edge", follow.Key(followerID, followeeID)))
		return HandleMongoError(err, "follow")
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Exists checks if follower follows followee
func (r *MongoFollowRepository) Exists(ctx context.Context, followerID, followeeID user.ID) (bool, error) {
	return existsFilter(ctx, r.collection, edgeFilter(followerID, followeeID), "follow")
}

// FollowersOf returns profiles of users following userID
func (r *MongoFollowRepository) FollowersOf(ctx context.Context, userID user.ID) ([]user.Profile, error) {
	return r.profiles(ctx, "followee_id", "follower_id", userID)
}

// FollowingOf returns profiles of users followed by userID
func (r *MongoFollowRepository) FollowingOf(ctx context.Context, userID user.ID) ([]user.Profile, error) {
	return r.profiles(ctx, "follower_id", "followee_id", userID)
}

// CountFollowers returns the number of users following userID
func (r *MongoFollowRepository) CountFollowers(ctx context.Context, userID user.ID) (int, error) {
	count, err := CountFilter(ctx, r.collection, bson.M{"followee_id": int64(userID)})
	return count, HandleMongoError(err, "follow")
}

// CountFollowing returns the number of users followed by userID
func (r *MongoFollowRepository) CountFollowing(ctx context.Context, userID user.ID) (int, error) {
	count, err := CountFilter(ctx, r.collection, bson.M{"follower_id": int64(userID)})
	return count, HandleMongoError(err, "follow")
}

// profiles joins edges matching matchField == userID with the profile referenced by joinField.
// Edges pointing to unknown users drop out at $unwind.
func (r *MongoFollowRepository) profiles(
	ctx context.Context,
	matchField, joinField string,
	userID user.ID,
) ([]user.Profile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{matchField: int64(userID)}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         r.usersCollection,
			"localField":   joinField,
			"foreignField": "user_id",
			"as":           "profile",
		}}},
		{{Key: "$unwind", Value: "$profile"}},
		{{Key: "$replaceWith", Value: "$profile"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.logFailure(ctx, "failed to list follow profiles", err, slog.Int64("user_id", int64(userID)))
		return nil, HandleMongoError(err, "follow")
	}
	return decodeAll(ctx, cursor, documentToProfile)
}

func edgeFilter(followerID, followeeID user.ID) bson.M {
	return bson.M{"follower_id": int64(followerID), "followee_id": int64(followeeID)}
}

type followDocument struct {
	FollowerID int64     `bson:"follower_id"`
	FolloweeID int64     `bson:"followee_id"`
	CreatedAt  time.Time `bson:"created_at"`
}
