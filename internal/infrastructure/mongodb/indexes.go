// Package mongodb provides MongoDB infrastructure components including index management.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names as constants for consistency.
const (
	CollectionUsers              = "users"
	CollectionFollows            = "follows"
	CollectionMentorshipRequests = "mentorship_requests"
	CollectionSkills             = "skills"
	CollectionSkillOffers        = "skill_offers"
	CollectionUserSkills         = "user_skills"
	CollectionCounters           = "counters"
)

// IndexDefinition describes a MongoDB index to be created.
type IndexDefinition struct {
	Collection string
	Name       string
	Keys       bson.D
	Unique     bool
}

func (d IndexDefinition) model() mongo.IndexModel {
	opts := options.Index().SetName(d.Name)
	if d.Unique {
		opts = opts.SetUnique(true)
	}
	return mongo.IndexModel{Keys: d.Keys, Options: opts}
}

// CreateAllIndexes creates all necessary indexes for the application.
// This function is idempotent - calling it multiple times is safe.
func CreateAllIndexes(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, GetAllIndexDefinitions())
}

// CreateCollectionIndexes creates indexes for a specific collection only.
func CreateCollectionIndexes(ctx context.Context, db *mongo.Database, collectionName string) error {
	var indexes []IndexDefinition
	for _, idx := range GetAllIndexDefinitions() {
		if idx.Collection == collectionName {
			indexes = append(indexes, idx)
		}
	}
	if len(indexes) == 0 {
		return fmt.Errorf("unknown collection: %s", collectionName)
	}
	return createIndexes(ctx, db, indexes)
}

func createIndexes(ctx context.Context, db *mongo.Database, indexes []IndexDefinition) error {
	for _, idx := range indexes {
		_, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, idx.model())
		if err != nil {
			return fmt.Errorf("failed to create index %s on collection %s: %w", idx.Name, idx.Collection, err)
		}
	}
	return nil
}

// GetAllIndexDefinitions returns all index definitions for all collections.
func GetAllIndexDefinitions() []IndexDefinition {
	var indexes []IndexDefinition

	indexes = append(indexes, GetUserIndexes()...)
	indexes = append(indexes, GetFollowIndexes()...)
	indexes = append(indexes, GetMentorshipIndexes()...)
	indexes = append(indexes, GetSkillIndexes()...)

	return indexes
}

// GetUserIndexes returns index definitions for the users collection.
func GetUserIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			Collection: CollectionUsers,
			Name:       "idx_users_id_unique",
			Keys:       bson.D{{Key: "user_id", Value: 1}},
			Unique:     true,
		},
	}
}

// GetFollowIndexes returns index definitions for the follows collection.
func GetFollowIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			// One edge per ordered pair
			Collection: CollectionFollows,
			Name:       "idx_follows_pair_unique",
			Keys:       bson.D{{Key: "follower_id", Value: 1}, {Key: "followee_id", Value: 1}},
			Unique:     true,
		},
		{
			// Followers listing and count
			Collection: CollectionFollows,
			Name:       "idx_follows_followee",
			Keys:       bson.D{{Key: "followee_id", Value: 1}, {Key: "created_at", Value: 1}},
		},
	}
}

// GetMentorshipIndexes returns index definitions for the mentorship_requests collection.
func GetMentorshipIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			Collection: CollectionMentorshipRequests,
			Name:       "idx_mentorship_id_unique",
			Keys:       bson.D{{Key: "request_id", Value: 1}},
			Unique:     true,
		},
		{
			// Cooldown lookup: latest request of a directed pair
			Collection: CollectionMentorshipRequests,
			Name:       "idx_mentorship_pair_time",
			Keys: bson.D{
				{Key: "requester_id", Value: 1},
				{Key: "receiver_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	}
}

// GetSkillIndexes returns index definitions for skills, offers and user skills.
func GetSkillIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			Collection: CollectionSkills,
			Name:       "idx_skills_id_unique",
			Keys:       bson.D{{Key: "skill_id", Value: 1}},
			Unique:     true,
		},
		{
			Collection: CollectionSkills,
			Name:       "idx_skills_title_unique",
			Keys:       bson.D{{Key: "title", Value: 1}},
			Unique:     true,
		},
		{
			Collection: CollectionSkillOffers,
			Name:       "idx_offers_receiver_skill",
			Keys:       bson.D{{Key: "receiver_id", Value: 1}, {Key: "skill_id", Value: 1}},
		},
		{
			Collection: CollectionUserSkills,
			Name:       "idx_user_skills_unique",
			Keys:       bson.D{{Key: "user_id", Value: 1}, {Key: "skill_id", Value: 1}},
			Unique:     true,
		},
	}
}
