package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/lllypuk/talentnet/internal/domain/errs"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

// MongoMentorshipRepository realizuet mentorshipapp.Repository
type MongoMentorshipRepository struct {
	base
}

// NewMongoMentorshipRepository creates New MongoDB Mentorship Repository
func NewMongoMentorshipRepository(collection *mongo.Collection, opts ...Option) *MongoMentorshipRepository {
	return &MongoMentorshipRepository{base: newBase(collection, opts)}
}

// Save inserts a new request or overwrites an existing one
func (r *MongoMentorshipRepository) Save(ctx context.Context, req *mentorship.Request) error {
	if req == nil || req.ID().IsZero() {
		return errs.ErrInvalidInput
	}

	doc := requestToDocument(req)
	_, err := r.collection.UpdateOne(ctx, bson.M{"request_id": doc.RequestID}, bson.M{"$set": doc}, UpsertOptions())
	r.logFailure(ctx, "failed to save mentorship request", err, slog.String("request_id", doc.RequestID))
	return HandleMongoError(err, "mentorship request")
}

// UpdateStatus stores the new status only while the stored one is still expected.
// A lost race fails with errs.ErrConcurrentModification.
func (r *MongoMentorshipRepository) UpdateStatus(
	ctx context.Context,
	req *mentorship.Request,
	expected mentorship.Status,
) error {
	filter := bson.M{"request_id": req.ID().String(), "status": string(expected)}
	update := bson.M{"$set": bson.M{
		"status":           string(req.Status()),
		"rejection_reason": req.RejectionReason(),
		"updated_at":       req.UpdatedAt(),
	}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		r.logFailure(ctx, "failed to update mentorship request status", err, slog.String("request_id", req.ID().String()))
		return HandleMongoError(err, "mentorship request")
	}
	if res.MatchedCount > 0 {
		return nil
	}

	exists, err := existsFilter(ctx, r.collection, bson.M{"request_id": req.ID().String()}, "mentorship request")
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrNotFound
	}
	return errs.ErrConcurrentModification
}

// FindByID finds request po ID
func (r *MongoMentorshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*mentorship.Request, error) {
	if id.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	var doc requestDocument
	err := r.collection.FindOne(ctx, bson.M{"request_id": id.String()}).Decode(&doc)
	if err != nil {
		r.logFailure(ctx, "failed to find mentorship request", err, slog.String("request_id", id.String()))
		return nil, HandleMongoError(err, "mentorship request")
	}
	return documentToRequest(&doc)
}

// FindAll returns all requests in creation order
func (r *MongoMentorshipRepository) FindAll(ctx context.Context) ([]*mentorship.Request, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logFailure(ctx, "failed to list mentorship requests", err)
		return nil, HandleMongoError(err, "mentorship requests")
	}
	return decodeAll(ctx, cursor, documentToRequest)
}

// FindLatestBetween returns the newest request from mentee to mentor
func (r *MongoMentorshipRepository) FindLatestBetween(
	ctx context.Context,
	menteeID, mentorID user.ID,
) (*mentorship.Request, error) {
	filter := bson.M{"requester_id": int64(menteeID), "receiver_id": int64(mentorID)}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var doc requestDocument
	err := r.collection.FindOne(ctx, filter, opts).Decode(&doc)
	if err != nil {
		r.logFailure(ctx, "failed to find latest mentorship request", err,
			slog.Int64("mentee_id", int64(menteeID)),
			slog.Int64("mentor_id", int64(mentorID)),
		)
		return nil, HandleMongoError(err, "mentorship request")
	}
	return documentToRequest(&doc)
}

// requestDocument represents strukturu dokumenta in MongoDB
type requestDocument struct {
	RequestID       string    `bson:"request_id"`
	RequesterID     int64     `bson:"requester_id"`
	ReceiverID      int64     `bson:"receiver_id"`
	Description     string    `bson:"description"`
	Status          string    `bson:"status"`
	RejectionReason string    `bson:"rejection_reason,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

func requestToDocument(req *mentorship.Request) requestDocument {
	return requestDocument{
		RequestID:       req.ID().String(),
		RequesterID:     int64(req.RequesterID()),
		ReceiverID:      int64(req.ReceiverID()),
		Description:     req.Description(),
		Status:          string(req.Status()),
		RejectionReason: req.RejectionReason(),
		CreatedAt:       req.CreatedAt(),
		UpdatedAt:       req.UpdatedAt(),
	}
}

func documentToRequest(doc *requestDocument) (*mentorship.Request, error) {
	id, err := uuid.ParseUUID(doc.RequestID)
	if err != nil {
		return nil, fmt.Errorf("request %q: %w", doc.RequestID, err)
	}
	status, err := mentorship.ParseStatus(doc.Status)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", doc.RequestID, err)
	}
	return mentorship.Reconstruct(
		id,
		user.ID(doc.RequesterID),
		user.ID(doc.ReceiverID),
		doc.Description,
		status,
		doc.RejectionReason,
		doc.CreatedAt.UTC(),
		doc.UpdatedAt.UTC(),
	), nil
}
