package repository

import (
	"context"
	"fmt"

	"social-webbase/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// LikeRepository flips membership in the liked_by set of posts, comments
// and embedded replies. Each toggle is a single pipeline update.
type LikeRepository struct {
	ColPosts    *mongo.Collection
	ColComments *mongo.Collection
}

// toggleExpr evaluates to field with actor removed when present, added otherwise.
func toggleExpr(field string, actor bson.ObjectID) bson.D {
	current := bson.D{{Key: "$ifNull", Value: bson.A{field, bson.A{}}}}
	return bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$in", Value: bson.A{actor, current}}},
		bson.D{{Key: "$setDifference", Value: bson.A{current, bson.A{actor}}}},
		bson.D{{Key: "$concatArrays", Value: bson.A{current, bson.A{actor}}}},
	}}}
}

func (r *LikeRepository) Toggle(ctx context.Context, target models.LikeTarget, actor bson.ObjectID) (models.LikeState, error) {
	switch target.Kind {
	case models.LikePost:
		return r.toggleTopLevel(ctx, r.ColPosts, target.ID, actor)
	case models.LikeComment:
		return r.toggleTopLevel(ctx, r.ColComments, target.ID, actor)
	case models.LikeReply:
		return r.toggleReply(ctx, target.ID, target.ReplyID, actor)
	default:
		return models.LikeState{}, fmt.Errorf("unknown like target %q", target.Kind)
	}
}

func (r *LikeRepository) toggleTopLevel(ctx context.Context, col *mongo.Collection, id, actor bson.ObjectID) (models.LikeState, error) {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "liked_by", Value: toggleExpr("$liked_by", actor)},
		}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"liked_by": 1})

	var doc struct {
		LikedBy []bson.ObjectID `bson:"liked_by"`
	}
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		return models.LikeState{}, notFound(err)
	}
	return models.StateFor(doc.LikedBy, actor), nil
}

func (r *LikeRepository) toggleReply(ctx context.Context, commentID, replyID, actor bson.ObjectID) (models.LikeState, error) {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "replies", Value: bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: "$replies"},
				{Key: "as", Value: "r"},
				{Key: "in", Value: bson.D{{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$$r._id", replyID}}},
					bson.D{{Key: "$mergeObjects", Value: bson.A{
						"$$r",
						bson.D{{Key: "liked_by", Value: toggleExpr("$$r.liked_by", actor)}},
					}}},
					"$$r",
				}}}},
			}}}},
		}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"replies": 1})

	var c models.Comment
	filter := bson.M{"_id": commentID, "replies._id": replyID}
	if err := r.ColComments.FindOneAndUpdate(ctx, filter, update, opts).Decode(&c); err != nil {
		return models.LikeState{}, notFound(err)
	}
	reply, ok := c.FindReply(replyID)
	if !ok {
		return models.LikeState{}, ErrNotFound
	}
	return models.StateFor(reply.LikedBy, actor), nil
}
