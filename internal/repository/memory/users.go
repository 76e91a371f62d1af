package memory

import (
	"context"

	"social-webbase/internal/models"
	"social-webbase/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	defer r.s.lock(ctx)()
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	id := u.ID
	r.s.users[id] = cloneUser(u)
	r.s.journal(ctx, func() { delete(r.s.users, id) })
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	defer r.s.lock(ctx)()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) AddToSet(ctx context.Context, userID bson.ObjectID, field models.UserSetField, member bson.ObjectID) error {
	return r.mutate(ctx, userID, field, func(ids []bson.ObjectID) []bson.ObjectID {
		if models.ContainsID(ids, member) {
			return ids
		}
		return append(cloneIDs(ids), member)
	})
}

func (r *UserRepository) PullFromSet(ctx context.Context, userID bson.ObjectID, field models.UserSetField, member bson.ObjectID) error {
	return r.mutate(ctx, userID, field, func(ids []bson.ObjectID) []bson.ObjectID {
		out := make([]bson.ObjectID, 0, len(ids))
		for _, v := range ids {
			if v != member {
				out = append(out, v)
			}
		}
		return out
	})
}

func (r *UserRepository) mutate(ctx context.Context, userID bson.ObjectID, field models.UserSetField, fn func([]bson.ObjectID) []bson.ObjectID) error {
	defer r.s.lock(ctx)()
	u, ok := r.s.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	prev := cloneUser(u)
	next := cloneUser(u)
	switch field {
	case models.FieldFollowing:
		next.Following = fn(next.Following)
	case models.FieldFollowers:
		next.Followers = fn(next.Followers)
	}
	r.s.users[userID] = next
	r.s.journal(ctx, func() { r.s.users[userID] = prev })
	return nil
}
