package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"social-webbase/internal/apperror"
	"social-webbase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestToggleFollowFollowsThenUnfollows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "a"), f.user(t, "b")

	res, err := f.follows.ToggleFollow(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, StateFollowed, res.State)
	assert.Equal(t, []bson.ObjectID{b}, res.User.Following)
	assert.Equal(t, []bson.ObjectID{a}, res.Target.Followers)
	assert.Empty(t, res.User.Followers)
	assert.Empty(t, res.Target.Following)

	res, err = f.follows.ToggleFollow(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, StateUnfollowed, res.State)
	assert.Empty(t, f.load(t, a).Following)
	assert.Empty(t, f.load(t, b).Followers)
}

func TestToggleFollowRejectsSelfFollow(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a")

	_, err := f.follows.ToggleFollow(context.Background(), a, a)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidOperation, apperror.KindOf(err))
	assert.Empty(t, f.load(t, a).Following)
	assert.Empty(t, f.load(t, a).Followers)
}

func TestToggleFollowUnknownTarget(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a")

	_, err := f.follows.ToggleFollow(context.Background(), a, bson.NewObjectID())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Empty(t, f.load(t, a).Following)
}

func TestToggleFollowHealsHalfEdge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "a"), f.user(t, "b")
	// only the actor side of the edge was persisted
	require.NoError(t, f.store.Users().AddToSet(ctx, a, models.FieldFollowing, b))

	res, err := f.follows.ToggleFollow(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, StateFollowed, res.State)
	assert.Equal(t, []bson.ObjectID{b}, f.load(t, a).Following)
	assert.Equal(t, []bson.ObjectID{a}, f.load(t, b).Followers)
}

// failingUsers fails every write to one side of the follow graph.
type failingUsers struct {
	UserStore
	field models.UserSetField
}

var errWriteConflict = errors.New("write conflict")

func (u failingUsers) AddToSet(ctx context.Context, id bson.ObjectID, field models.UserSetField, m bson.ObjectID) error {
	if field == u.field {
		return errWriteConflict
	}
	return u.UserStore.AddToSet(ctx, id, field, m)
}

func (u failingUsers) PullFromSet(ctx context.Context, id bson.ObjectID, field models.UserSetField, m bson.ObjectID) error {
	if field == u.field {
		return errWriteConflict
	}
	return u.UserStore.PullFromSet(ctx, id, field, m)
}

func TestToggleFollowRollsBackPartialWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "a"), f.user(t, "b")
	svc := NewFollowService(f.store, failingUsers{UserStore: f.store.Users(), field: models.FieldFollowers}, nil)

	_, err := svc.ToggleFollow(ctx, a, b)
	require.Error(t, err)
	assert.Equal(t, apperror.KindTransactionFailed, apperror.KindOf(err))
	assert.ErrorIs(t, err, errWriteConflict)

	assert.Empty(t, f.load(t, a).Following, "actor side must be rolled back")
	assert.Empty(t, f.load(t, b).Followers)
}

func TestToggleFollowRollsBackPartialUnfollow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "a"), f.user(t, "b")
	_, err := f.follows.ToggleFollow(ctx, a, b)
	require.NoError(t, err)

	svc := NewFollowService(f.store, failingUsers{UserStore: f.store.Users(), field: models.FieldFollowers}, nil)
	_, err = svc.ToggleFollow(ctx, a, b)
	assert.Equal(t, apperror.KindTransactionFailed, apperror.KindOf(err))

	assert.Equal(t, []bson.ObjectID{b}, f.load(t, a).Following)
	assert.Equal(t, []bson.ObjectID{a}, f.load(t, b).Followers)
}

func TestToggleFollowSymmetryUnderConcurrency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := make([]bson.ObjectID, 5)
	for i := range ids {
		ids[i] = f.user(t, "u")
	}

	var wg sync.WaitGroup
	for round := 0; round < 8; round++ {
		for i := range ids {
			for j := range ids {
				if i == j {
					continue
				}
				wg.Add(1)
				go func(actor, target bson.ObjectID) {
					defer wg.Done()
					_, err := f.follows.ToggleFollow(ctx, actor, target)
					assert.NoError(t, err)
				}(ids[i], ids[j])
			}
		}
	}
	wg.Wait()

	for _, a := range ids {
		ua := f.load(t, a)
		for _, b := range ids {
			ub := f.load(t, b)
			assert.Equal(t, ua.IsFollowing(b), ub.HasFollower(a),
				"B in A.following must match A in B.followers")
		}
	}
}

func TestFollowersAndFollowing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b, c := f.user(t, "a"), f.user(t, "b"), f.user(t, "c")
	_, err := f.follows.ToggleFollow(ctx, a, c)
	require.NoError(t, err)
	_, err = f.follows.ToggleFollow(ctx, b, c)
	require.NoError(t, err)

	followers, err := f.follows.Followers(ctx, c)
	require.NoError(t, err)
	assert.ElementsMatch(t, []bson.ObjectID{a, b}, followers)

	following, err := f.follows.Following(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{c}, following)

	none, err := f.follows.Following(ctx, c)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = f.follows.Followers(ctx, bson.NewObjectID())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
