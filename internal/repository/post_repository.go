package repository

import (
	"context"

	"social-webbase/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PostRepository struct {
	Col *mongo.Collection
}

func (r *PostRepository) Insert(ctx context.Context, p *models.Post) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if p.LikedBy == nil {
		p.LikedBy = []bson.ObjectID{}
	}
	_, err := r.Col.InsertOne(ctx, p)
	return err
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// IncrementViews bumps the view counter and returns the post after the bump.
func (r *PostRepository) IncrementViews(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Post
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&p)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
