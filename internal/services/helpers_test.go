package services

import (
	"context"
	"testing"
	"time"

	"social-webbase/internal/models"
	"social-webbase/internal/repository/memory"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type fixture struct {
	store    *memory.Store
	follows  *FollowService
	likes    *LikeService
	comments *CommentService
	posts    *PostService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.New()
	return &fixture{
		store:    s,
		follows:  NewFollowService(s, s.Users(), nil),
		likes:    NewLikeService(s.Likes(), s.Comments()),
		comments: NewCommentService(s.Posts(), s.Comments(), nil),
		posts:    NewPostService(s.Posts()),
	}
}

func (f *fixture) user(t *testing.T, name string) bson.ObjectID {
	t.Helper()
	u := &models.User{Username: name, CreatedAt: time.Now().UTC()}
	require.NoError(t, f.store.Users().Insert(context.Background(), u))
	return u.ID
}

func (f *fixture) post(t *testing.T, owner bson.ObjectID) bson.ObjectID {
	t.Helper()
	p := &models.Post{UserID: owner, PostText: "post", CreatedAt: time.Now().UTC()}
	require.NoError(t, f.store.Posts().Insert(context.Background(), p))
	return p.ID
}

func (f *fixture) load(t *testing.T, id bson.ObjectID) *models.User {
	t.Helper()
	u, err := f.store.Users().FindByID(context.Background(), id)
	require.NoError(t, err)
	return u
}
