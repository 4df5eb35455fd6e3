package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

// MongoOfferRepository realizuet skillapp.OfferRepository
type MongoOfferRepository struct {
	base
}

// NewMongoOfferRepository creates New MongoDB Offer Repository
func NewMongoOfferRepository(collection *mongo.Collection, opts ...Option) *MongoOfferRepository {
	return &MongoOfferRepository{base: newBase(collection, opts)}
}

// Create saves an offer
func (r *MongoOfferRepository) Create(ctx context.Context, o *skill.Offer) error {
	doc := offerDocument{
		OfferID:    o.ID().String(),
		SkillID:    int64(o.SkillID()),
		ReceiverID: int64(o.ReceiverID()),
		AuthorID:   int64(o.AuthorID()),
		CreatedAt:  o.CreatedAt(),
	}
	_, err := r.collection.InsertOne(ctx, doc)
	r.logFailure(ctx, "failed to insert skill offer", err, slog.String("offer_id", doc.OfferID))
	return HandleMongoError(err, "skill offer")
}

// FindByReceiver returns all offers made to receiverID, oldest first
func (r *MongoOfferRepository) FindByReceiver(ctx context.Context, receiverID user.ID) ([]*skill.Offer, error) {
	return r.find(ctx, bson.M{"receiver_id": int64(receiverID)})
}

// FindByReceiverAndSkill returns offers of skillID made to receiverID
func (r *MongoOfferRepository) FindByReceiverAndSkill(
	ctx context.Context,
	receiverID user.ID,
	skillID skill.ID,
) ([]*skill.Offer, error) {
	return r.find(ctx, offerFilter(receiverID, skillID))
}

// DeleteByReceiverAndSkill removes the offers and returns how many were removed
func (r *MongoOfferRepository) DeleteByReceiverAndSkill(
	ctx context.Context,
	receiverID user.ID,
	skillID skill.ID,
) (int, error) {
	res, err := r.collection.DeleteMany(ctx, offerFilter(receiverID, skillID))
	if err != nil {
		r.logFailure(ctx, "failed to delete skill offers", err,
			slog.Int64("receiver_id", int64(receiverID)),
			slog.Int64("skill_id", int64(skillID)),
		)
		return 0, HandleMongoError(err, "skill offers")
	}
	return int(res.DeletedCount), nil
}

func (r *MongoOfferRepository) find(ctx context.Context, filter bson.M) ([]*skill.Offer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		r.logFailure(ctx, "failed to list skill offers", err)
		return nil, HandleMongoError(err, "skill offers")
	}
	return decodeAll(ctx, cursor, documentToOffer)
}

func offerFilter(receiverID user.ID, skillID skill.ID) bson.M {
	return bson.M{"receiver_id": int64(receiverID), "skill_id": int64(skillID)}
}

type offerDocument struct {
	OfferID    string    `bson:"offer_id"`
	SkillID    int64     `bson:"skill_id"`
	ReceiverID int64     `bson:"receiver_id"`
	AuthorID   int64     `bson:"author_id"`
	CreatedAt  time.Time `bson:"created_at"`
}

func documentToOffer(d *offerDocument) (*skill.Offer, error) {
	id, err := uuid.ParseUUID(d.OfferID)
	if err != nil {
		return nil, fmt.Errorf("offer %q: %w", d.OfferID, err)
	}
	return skill.ReconstructOffer(
		id,
		skill.ID(d.SkillID),
		user.ID(d.ReceiverID),
		user.ID(d.AuthorID),
		d.CreatedAt.UTC(),
	), nil
}
