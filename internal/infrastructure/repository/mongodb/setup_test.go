package mongodb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/infrastructure/mongodb"
	repo "github.com/lllypuk/talentnet/internal/infrastructure/repository/mongodb"
	"github.com/lllypuk/talentnet/internal/testutil"
)

var t0 = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

type stores struct {
	db         *mongo.Database
	users      *repo.MongoUserRepository
	follows    *repo.MongoFollowRepository
	mentorship *repo.MongoMentorshipRepository
	skills     *repo.MongoSkillRepository
	offers     *repo.MongoOfferRepository
}

func setupStores(t *testing.T) *stores {
	t.Helper()

	db := testutil.SetupTestMongoDB(t)
	require.NoError(t, mongodb.CreateAllIndexes(context.Background(), db))

	return &stores{
		db:    db,
		users: repo.NewMongoUserRepository(db.Collection(mongodb.CollectionUsers)),
		follows: repo.NewMongoFollowRepository(
			db.Collection(mongodb.CollectionFollows),
			mongodb.CollectionUsers,
		),
		mentorship: repo.NewMongoMentorshipRepository(db.Collection(mongodb.CollectionMentorshipRequests)),
		skills: repo.NewMongoSkillRepository(
			db.Collection(mongodb.CollectionSkills),
			db.Collection(mongodb.CollectionUserSkills),
			db.Collection(mongodb.CollectionCounters),
		),
		offers: repo.NewMongoOfferRepository(db.Collection(mongodb.CollectionSkillOffers)),
	}
}

func (s *stores) seedUsers(t *testing.T, names ...string) {
	t.Helper()
	for i, name := range names {
		p, err := user.NewProfile(user.ID(i+1), name, name+"@example.com", "Kazan", "")
		require.NoError(t, err)
		require.NoError(t, s.users.Save(context.Background(), p))
	}
}
