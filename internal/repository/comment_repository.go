package repository

import (
	"context"
	"time"

	"social-webbase/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CommentRepository struct {
	Col *mongo.Collection
}

func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) error {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	// $push and the like pipeline need arrays, not null
	if c.LikedBy == nil {
		c.LikedBy = []bson.ObjectID{}
	}
	if c.Replies == nil {
		c.Replies = []models.Reply{}
	}
	_, err := r.Col.InsertOne(ctx, c)
	return err
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error) {
	var c models.Comment
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// ListByPost returns comments of a post oldest first, starting after the
// page position when one is set.
func (r *CommentRepository) ListByPost(ctx context.Context, postID bson.ObjectID, page models.Page) ([]models.Comment, error) {
	filter := bson.M{"post_id": postID}
	if !page.AfterID.IsZero() {
		filter["$or"] = []bson.M{
			{"created_at": bson.M{"$gt": page.AfterTime}},
			{"created_at": page.AfterTime, "_id": bson.M{"$gt": page.AfterID}},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if page.Limit > 0 {
		opts.SetLimit(page.Limit)
	}

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.Comment{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AppendReply pushes reply onto the end of the replies array.
func (r *CommentRepository) AppendReply(ctx context.Context, commentID bson.ObjectID, reply models.Reply) (*models.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c models.Comment
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": commentID},
		bson.M{"$push": bson.M{"replies": reply}},
		opts,
	).Decode(&c)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// UpdateContent rewrites the content of a comment owned by authorID.
// ErrNotFound covers both a missing comment and a different author.
func (r *CommentRepository) UpdateContent(ctx context.Context, commentID, authorID bson.ObjectID, content string, at time.Time) (*models.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c models.Comment
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": commentID, "user_id": authorID},
		bson.M{"$set": bson.M{"content": content, "updated_at": at}},
		opts,
	).Decode(&c)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// DeleteByAuthor removes a comment, replies included, if authorID owns it.
func (r *CommentRepository) DeleteByAuthor(ctx context.Context, commentID, authorID bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": commentID, "user_id": authorID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
