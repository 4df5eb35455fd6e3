package mongodb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lllypuk/talentnet/internal/infrastructure/mongodb"
	"github.com/lllypuk/talentnet/internal/testutil"
)

func TestGetAllIndexDefinitions_NamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, idx := range mongodb.GetAllIndexDefinitions() {
		assert.NotEmpty(t, idx.Name)
		assert.False(t, seen[idx.Name], "duplicate index name %s", idx.Name)
		seen[idx.Name] = true
	}
}

func TestGetFollowIndexes(t *testing.T) {
	indexes := mongodb.GetFollowIndexes()

	pair := findIndexByName(indexes, "idx_follows_pair_unique")
	require.NotNil(t, pair)
	assert.True(t, pair.Unique)
	assert.Equal(t, bson.D{{Key: "follower_id", Value: 1}, {Key: "followee_id", Value: 1}}, pair.Keys)
}

func TestGetSkillIndexes(t *testing.T) {
	indexes := mongodb.GetSkillIndexes()

	title := findIndexByName(indexes, "idx_skills_title_unique")
	require.NotNil(t, title)
	assert.True(t, title.Unique)

	owned := findIndexByName(indexes, "idx_user_skills_unique")
	require.NotNil(t, owned)
	assert.True(t, owned.Unique)
	assert.Equal(t, mongodb.CollectionUserSkills, owned.Collection)
}

func TestCreateCollectionIndexes_UnknownCollection(t *testing.T) {
	err := mongodb.CreateCollectionIndexes(context.Background(), nil, "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}

func TestCreateAllIndexes(t *testing.T) {
	db := testutil.SetupTestMongoDB(t)
	ctx := context.Background()

	// Act - call twice, creation is idempotent
	require.NoError(t, mongodb.CreateAllIndexes(ctx, db))
	require.NoError(t, mongodb.CreateAllIndexes(ctx, db))

	// Assert
	for _, collName := range []string{
		mongodb.CollectionUsers,
		mongodb.CollectionFollows,
		mongodb.CollectionMentorshipRequests,
		mongodb.CollectionSkills,
		mongodb.CollectionUserSkills,
	} {
		indexes := getCollectionIndexes(ctx, t, db, collName)
		assert.GreaterOrEqual(t, len(indexes), 2, "collection %s should have indexes", collName)
	}
}

func TestCreateAllIndexes_RejectsDuplicateFollow(t *testing.T) {
	db := testutil.SetupTestMongoDB(t)
	ctx := context.Background()
	require.NoError(t, mongodb.CreateAllIndexes(ctx, db))

	coll := db.Collection(mongodb.CollectionFollows)
	_, err := coll.InsertOne(ctx, bson.M{"follower_id": int64(1), "followee_id": int64(2)})
	require.NoError(t, err)

	_, err = coll.InsertOne(ctx, bson.M{"follower_id": int64(1), "followee_id": int64(2)})

	require.Error(t, err)
	assert.True(t, mongo.IsDuplicateKeyError(err))
}

func getCollectionIndexes(ctx context.Context, t *testing.T, db *mongo.Database, collName string) []bson.M {
	t.Helper()

	cursor, err := db.Collection(collName).Indexes().List(ctx)
	require.NoError(t, err)

	var indexes []bson.M
	require.NoError(t, cursor.All(ctx, &indexes))

	return indexes
}

func findIndexByName(indexes []mongodb.IndexDefinition, name string) *mongodb.IndexDefinition {
	for i := range indexes {
		if indexes[i].Name == name {
			return &indexes[i]
		}
	}
	return nil
}
