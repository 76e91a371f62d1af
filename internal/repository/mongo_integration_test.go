//go:build integration

package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"social-webbase/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Needs a replica set:
// MONGO_URI='mongodb://localhost:27017/?replicaSet=rs0' go test -tags integration ./internal/repository
func newMongo(t *testing.T) *Mongo {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)

	dbName := "social_it_" + uuid.NewString()[:8]
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Database(dbName).Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return New(client, dbName)
}

func insertUser(t *testing.T, m *Mongo, name string) bson.ObjectID {
	t.Helper()
	u := &models.User{Username: name, CreatedAt: time.Now().UTC()}
	require.NoError(t, m.Users.Insert(context.Background(), u))
	return u.ID
}

func TestMongoPostLikeInvolution(t *testing.T) {
	m := newMongo(t)
	ctx := context.Background()
	p := &models.Post{UserID: bson.NewObjectID(), PostText: "p", CreatedAt: time.Now().UTC()}
	require.NoError(t, m.Posts.Insert(ctx, p))
	target := models.LikeTarget{Kind: models.LikePost, ID: p.ID}
	a, b := bson.NewObjectID(), bson.NewObjectID()

	state, err := m.Likes.Toggle(ctx, target, a)
	require.NoError(t, err)
	assert.Equal(t, models.LikeState{Liked: true, LikeCount: 1}, state)

	state, err = m.Likes.Toggle(ctx, target, b)
	require.NoError(t, err)
	assert.Equal(t, models.LikeState{Liked: true, LikeCount: 2}, state)

	state, err = m.Likes.Toggle(ctx, target, a)
	require.NoError(t, err)
	assert.Equal(t, models.LikeState{Liked: false, LikeCount: 1}, state)

	stored, err := m.Posts.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{b}, stored.LikedBy)

	_, err = m.Likes.Toggle(ctx, models.LikeTarget{Kind: models.LikePost, ID: bson.NewObjectID()}, a)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoReplyLikeInvolution(t *testing.T) {
	m := newMongo(t)
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Millisecond)
	c := &models.Comment{
		PostID:    bson.NewObjectID(),
		UserID:    bson.NewObjectID(),
		Content:   "root",
		LikedBy:   []bson.ObjectID{},
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, m.Comments.Insert(ctx, c))
	for _, txt := range []string{"first", "second"} {
		_, err := m.Comments.AppendReply(ctx, c.ID, models.Reply{
			ID: bson.NewObjectID(), UserID: c.UserID, Content: txt, LikedBy: []bson.ObjectID{}, CreatedAt: at,
		})
		require.NoError(t, err)
	}
	stored, err := m.Comments.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, stored.Replies, 2)
	second := stored.Replies[1].ID

	actor := bson.NewObjectID()
	target := models.LikeTarget{Kind: models.LikeReply, ID: c.ID, ReplyID: second}

	state, err := m.Likes.Toggle(ctx, target, actor)
	require.NoError(t, err)
	assert.Equal(t, models.LikeState{Liked: true, LikeCount: 1}, state)

	stored, err = m.Comments.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Replies[0].LikedBy, "sibling reply untouched")
	assert.Equal(t, []bson.ObjectID{actor}, stored.Replies[1].LikedBy)
	assert.Equal(t, "second", stored.Replies[1].Content)

	state, err = m.Likes.Toggle(ctx, target, actor)
	require.NoError(t, err)
	assert.Equal(t, models.LikeState{Liked: false, LikeCount: 0}, state)

	_, err = m.Likes.Toggle(ctx, models.LikeTarget{Kind: models.LikeReply, ID: c.ID, ReplyID: bson.NewObjectID()}, actor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoTransactionRollsBackFollow(t *testing.T) {
	m := newMongo(t)
	ctx := context.Background()
	actor, target := insertUser(t, m, "actor"), insertUser(t, m, "target")
	errBoom := errors.New("second write failed")

	err := m.WithTransaction(ctx, func(ctx context.Context) error {
		if err := m.Users.AddToSet(ctx, actor, models.FieldFollowing, target); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	u, err := m.Users.FindByID(ctx, actor)
	require.NoError(t, err)
	assert.Empty(t, u.Following, "aborted write must not persist")

	err = m.WithTransaction(ctx, func(ctx context.Context) error {
		if err := m.Users.AddToSet(ctx, actor, models.FieldFollowing, target); err != nil {
			return err
		}
		return m.Users.AddToSet(ctx, target, models.FieldFollowers, actor)
	})
	require.NoError(t, err)

	u, err = m.Users.FindByID(ctx, actor)
	require.NoError(t, err)
	v, err := m.Users.FindByID(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{target}, u.Following)
	assert.Equal(t, []bson.ObjectID{actor}, v.Followers)
}

func TestMongoTransactionRollsBackOnCancelledContext(t *testing.T) {
	m := newMongo(t)
	actor, target := insertUser(t, m, "actor"), insertUser(t, m, "target")

	ctx, cancel := context.WithCancel(context.Background())
	err := m.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := m.Users.AddToSet(txCtx, actor, models.FieldFollowing, target); err != nil {
			return err
		}
		cancel()
		return m.Users.AddToSet(txCtx, target, models.FieldFollowers, actor)
	})
	require.Error(t, err)

	u, err := m.Users.FindByID(context.Background(), actor)
	require.NoError(t, err)
	assert.Empty(t, u.Following)
}
