package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

// MongoUserRepository realizuet userapp.Repository and appcore.UserDirectory
type MongoUserRepository struct {
	base
}

// NewMongoUserRepository creates New MongoDB User Repository
func NewMongoUserRepository(collection *mongo.Collection, opts ...Option) *MongoUserRepository {
	return &MongoUserRepository{base: newBase(collection, opts)}
}

// FindProfile finds profile po ID
func (r *MongoUserRepository) FindProfile(ctx context.Context, id user.ID) (user.Profile, error) {
	if !id.IsValid() {
		return user.Profile{}, errs.ErrInvalidInput
	}

	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"user_id": int64(id)}).Decode(&doc)
	if err != nil {
		r.logFailure(ctx, "failed to find user by ID", err, slog.Int64("user_id", int64(id)))
		return user.Profile{}, HandleMongoError(err, "user")
	}

	return doc.toProfile(), nil
}

// Exists checks, suschestvuet li user s zadannym ID
func (r *MongoUserRepository) Exists(ctx context.Context, id user.ID) (bool, error) {
	if !id.IsValid() {
		return false, errs.ErrInvalidInput
	}
	return existsFilter(ctx, r.collection, bson.M{"user_id": int64(id)}, "user")
}

// Save creates or replaces the profile
func (r *MongoUserRepository) Save(ctx context.Context, p user.Profile) error {
	if !p.ID().IsValid() {
		return errs.ErrInvalidInput
	}

	now := time.Now().UTC()
	filter := bson.M{"user_id": int64(p.ID())}
	update := bson.M{
		"$set": bson.M{
			"username":   p.Username(),
			"email":      p.Email(),
			"city":       p.City(),
			"phone":      p.Phone(),
			"is_active":  p.IsActive(),
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, UpsertOptions())
	r.logFailure(ctx, "failed to save user", err, slog.Int64("user_id", int64(p.ID())))
	return HandleMongoError(err, "user")
}

// userDocument represents strukturu dokumenta in MongoDB
type userDocument struct {
	UserID    int64     `bson:"user_id"`
	Username  string    `bson:"username"`
	Email     string    `bson:"email"`
	City      string    `bson:"city"`
	Phone     string    `bson:"phone"`
	IsActive  bool      `bson:"is_active"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d *userDocument) toProfile() user.Profile {
	return user.Reconstruct(user.ID(d.UserID), d.Username, d.Email, d.City, d.Phone, d.IsActive)
}

func documentToProfile(d *userDocument) (user.Profile, error) {
	return d.toProfile(), nil
}
