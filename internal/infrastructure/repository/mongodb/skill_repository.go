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
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
)

const skillSequence = "skill_id"

// MongoSkillRepository stores skills and the skills users hold.
// Skill ids come from a counters document incremented atomically.
type MongoSkillRepository struct {
	base

	userSkills *mongo.Collection
	counters   *mongo.Collection
}

// NewMongoSkillRepository creates New MongoDB Skill Repository
func NewMongoSkillRepository(
	skills, userSkills, counters *mongo.Collection,
	opts ...Option,
) *MongoSkillRepository {
	return &MongoSkillRepository{
		base:       newBase(skills, opts),
		userSkills: userSkills,
		counters:   counters,
	}
}

// Create assigns the next id and inserts the skill
func (r *MongoSkillRepository) Create(ctx context.Context, s *skill.Skill) error {
	if s == nil {
		return errs.ErrInvalidInput
	}

	exists, err := existsFilter(ctx, r.collection, bson.M{"title": s.Title()}, "skill")
	if err != nil {
		return err
	}
	if exists {
		return errs.ErrAlreadyExists
	}

	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}

	doc := skillDocument{SkillID: int64(id), Title: s.Title(), CreatedAt: time.Now().UTC()}
	if _, err = r.collection.InsertOne(ctx, doc); err != nil {
		r.logFailure(ctx, "failed to insert skill", err, slog.String("title", s.Title()))
		return HandleMongoError(err, "skill")
	}

	s.AssignID(id)
	return nil
}

func (r *MongoSkillRepository) nextID(ctx context.Context) (skill.ID, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": skillSequence},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		r.logFailure(ctx, "failed to allocate skill id", err)
		return 0, fmt.Errorf("allocate skill id: %w", err)
	}
	return skill.ID(counter.Seq), nil
}

// FindByID finds skill po ID
func (r *MongoSkillRepository) FindByID(ctx context.Context, id skill.ID) (*skill.Skill, error) {
	var doc skillDocument
	err := r.collection.FindOne(ctx, bson.M{"skill_id": int64(id)}).Decode(&doc)
	if err != nil {
		r.logFailure(ctx, "failed to find skill", err, slog.Int64("skill_id", int64(id)))
		return nil, HandleMongoError(err, "skill")
	}
	return documentToSkill(&doc)
}

// FindByIDs returns the known skills among ids
func (r *MongoSkillRepository) FindByIDs(ctx context.Context, ids []skill.ID) (map[skill.ID]*skill.Skill, error) {
	out := make(map[skill.ID]*skill.Skill, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, int64(id))
	}

	skills, err := r.find(ctx, bson.M{"skill_id": bson.M{"$in": raw}})
	if err != nil {
		return nil, err
	}
	for _, s := range skills {
		out[s.ID()] = s
	}
	return out, nil
}

// FindByUser returns the skills userID holds, in order of acquisition
func (r *MongoSkillRepository) FindByUser(ctx context.Context, userID user.ID) ([]*skill.Skill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "acquired_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.userSkills.Find(ctx, bson.M{"user_id": int64(userID)}, opts)
	if err != nil {
		r.logFailure(ctx, "failed to list user skills", err, slog.Int64("user_id", int64(userID)))
		return nil, HandleMongoError(err, "user skills")
	}
	owned, err := decodeAll(ctx, cursor, func(d *userSkillDocument) (skill.ID, error) {
		return skill.ID(d.SkillID), nil
	})
	if err != nil {
		return nil, err
	}

	byID, err := r.FindByIDs(ctx, owned)
	if err != nil {
		return nil, err
	}
	out := make([]*skill.Skill, 0, len(owned))
	for _, id := range owned {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// UserHasSkill checks if userID holds skillID
func (r *MongoSkillRepository) UserHasSkill(ctx context.Context, userID user.ID, skillID skill.ID) (bool, error) {
	return existsFilter(ctx, r.userSkills, userSkillFilter(userID, skillID), "user skill")
}

// AssignToUser records the skill with its guarantors
func (r *MongoSkillRepository) AssignToUser(
	ctx context.Context,
	userID user.ID,
	skillID skill.ID,
	guarantors []user.ID,
) error {
	ids := make([]int64, 0, len(guarantors))
	for _, g := range guarantors {
		ids = append(ids, int64(g))
	}
	doc := userSkillDocument{
		UserID:     int64(userID),
		SkillID:    int64(skillID),
		Guarantors: ids,
		AcquiredAt: time.Now().UTC(),
	}
	_, err := r.userSkills.InsertOne(ctx, doc)
	r.logFailure(ctx, "failed to assign skill", err,
		slog.Int64("user_id", int64(userID)),
		slog.Int64("skill_id", int64(skillID)),
	)
	return HandleMongoError(err, "user skill")
}

// GuarantorsOf returns who vouched for userID holding skillID
func (r *MongoSkillRepository) GuarantorsOf(ctx context.Context, userID user.ID, skillID skill.ID) ([]user.ID, error) {
	var doc userSkillDocument
	if err := r.userSkills.FindOne(ctx, userSkillFilter(userID, skillID)).Decode(&doc); err != nil {
		return nil, HandleMongoError(err, "user skill")
	}
	out := make([]user.ID, 0, len(doc.Guarantors))
	for _, g := range doc.Guarantors {
		out = append(out, user.ID(g))
	}
	return out, nil
}

func (r *MongoSkillRepository) find(ctx context.Context, filter bson.M) ([]*skill.Skill, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "skill_id", Value: 1}}))
	if err != nil {
		r.logFailure(ctx, "failed to list skills", err)
		return nil, HandleMongoError(err, "skills")
	}
	return decodeAll(ctx, cursor, documentToSkill)
}

func userSkillFilter(userID user.ID, skillID skill.ID) bson.M {
	return bson.M{"user_id": int64(userID), "skill_id": int64(skillID)}
}

type skillDocument struct {
	SkillID   int64     `bson:"skill_id"`
	Title     string    `bson:"title"`
	CreatedAt time.Time `bson:"created_at"`
}

func documentToSkill(d *skillDocument) (*skill.Skill, error) {
	return skill.Reconstruct(skill.ID(d.SkillID), d.Title), nil
}

type userSkillDocument struct {
	UserID     int64     `bson:"user_id"`
	SkillID    int64     `bson:"skill_id"`
	Guarantors []int64   `bson:"guarantors"`
	AcquiredAt time.Time `bson:"acquired_at"`
}
