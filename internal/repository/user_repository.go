package repository

import (
	"context"
	"fmt"

	"social-webbase/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type UserRepository struct {
	Col *mongo.Collection
}

func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	if u.Following == nil {
		u.Following = []bson.ObjectID{}
	}
	if u.Followers == nil {
		u.Followers = []bson.ObjectID{}
	}
	_, err := r.Col.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// AddToSet inserts member into the named set; repeating it is a no-op.
func (r *UserRepository) AddToSet(ctx context.Context, userID bson.ObjectID, field models.UserSetField, member bson.ObjectID) error {
	return r.updateSet(ctx, userID, bson.M{"$addToSet": bson.M{string(field): member}})
}

// PullFromSet removes member from the named set.
func (r *UserRepository) PullFromSet(ctx context.Context, userID bson.ObjectID, field models.UserSetField, member bson.ObjectID) error {
	return r.updateSet(ctx, userID, bson.M{"$pull": bson.M{string(field): member}})
}

func (r *UserRepository) updateSet(ctx context.Context, userID bson.ObjectID, update bson.M) error {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("update user %s: %w", userID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
