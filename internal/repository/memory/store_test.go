package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"social-webbase/internal/models"
	"social-webbase/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func seedUsers(t *testing.T, s *Store, n int) []bson.ObjectID {
	t.Helper()
	ids := make([]bson.ObjectID, n)
	for i := range ids {
		u := &models.User{Username: "user"}
		require.NoError(t, s.Users().Insert(context.Background(), u))
		ids[i] = u.ID
	}
	return ids
}

func TestTransactionRollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	ids := seedUsers(t, s, 2)
	users := s.Users()

	errBoom := errors.New("boom")
	err := s.WithTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, users.AddToSet(ctx, ids[0], models.FieldFollowing, ids[1]))
		require.NoError(t, users.AddToSet(ctx, ids[1], models.FieldFollowers, ids[0]))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	a, err := users.FindByID(ctx, ids[0])
	require.NoError(t, err)
	b, err := users.FindByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Empty(t, a.Following)
	assert.Empty(t, b.Followers)
}

func TestTransactionRollsBackOnExpiredContext(t *testing.T) {
	s := New()
	ids := seedUsers(t, s, 2)
	users := s.Users()

	ctx, cancel := context.WithCancel(context.Background())
	err := s.WithTransaction(ctx, func(txCtx context.Context) error {
		require.NoError(t, users.AddToSet(txCtx, ids[0], models.FieldFollowing, ids[1]))
		cancel()
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)

	a, err := users.FindByID(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Empty(t, a.Following)
}

func TestNestedTransactionRejected(t *testing.T) {
	s := New()
	err := s.WithTransaction(context.Background(), func(ctx context.Context) error {
		return s.WithTransaction(ctx, func(context.Context) error { return nil })
	})
	assert.ErrorIs(t, err, ErrNestedTransaction)
}

func TestAddToSetIsIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	ids := seedUsers(t, s, 2)

	for range 3 {
		require.NoError(t, s.Users().AddToSet(ctx, ids[0], models.FieldFollowing, ids[1]))
	}
	u, err := s.Users().FindByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{ids[1]}, u.Following)

	err = s.Users().AddToSet(ctx, bson.NewObjectID(), models.FieldFollowing, ids[1])
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReturnedDocumentsAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	post := &models.Post{PostText: "hello"}
	require.NoError(t, s.Posts().Insert(ctx, post))

	got, err := s.Posts().FindByID(ctx, post.ID)
	require.NoError(t, err)
	got.LikedBy = append(got.LikedBy, bson.NewObjectID())

	again, err := s.Posts().FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, again.LikedBy)
}

func TestListByPostOrderAndWindow(t *testing.T) {
	s := New()
	ctx := context.Background()
	postID := bson.NewObjectID()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []bson.ObjectID
	for i := range 4 {
		c := &models.Comment{PostID: postID, Content: "c", CreatedAt: base.Add(time.Duration(3-i) * time.Minute)}
		require.NoError(t, s.Comments().Insert(ctx, c))
		ids = append(ids, c.ID)
	}
	require.NoError(t, s.Comments().Insert(ctx, &models.Comment{PostID: bson.NewObjectID(), CreatedAt: base}))

	all, err := s.Comments().ListByPost(ctx, postID, models.Page{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []bson.ObjectID{ids[3], ids[2], ids[1], ids[0]}, []bson.ObjectID{all[0].ID, all[1].ID, all[2].ID, all[3].ID})

	page, err := s.Comments().ListByPost(ctx, postID, models.Page{AfterTime: all[1].CreatedAt, AfterID: all[1].ID, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, all[2].ID, page[0].ID)
}

func TestToggleReplyLike(t *testing.T) {
	s := New()
	ctx := context.Background()
	replyID := bson.NewObjectID()
	c := &models.Comment{Replies: []models.Reply{{ID: replyID, Content: "r"}}}
	require.NoError(t, s.Comments().Insert(ctx, c))
	actor := bson.NewObjectID()

	state, err := s.Likes().Toggle(ctx, models.LikeTarget{Kind: models.LikeReply, ID: c.ID, ReplyID: replyID}, actor)
	require.NoError(t, err)
	assert.Equal(t, models.LikeState{Liked: true, LikeCount: 1}, state)

	_, err = s.Likes().Toggle(ctx, models.LikeTarget{Kind: models.LikeReply, ID: c.ID, ReplyID: bson.NewObjectID()}, actor)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stored, err := s.Comments().FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.LikedBy)
	assert.Equal(t, []bson.ObjectID{actor}, stored.Replies[0].LikedBy)
}
