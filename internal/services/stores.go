package services

import (
	"context"
	"time"

	"social-webbase/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Transactor runs fn atomically; all store calls made with the ctx passed to
// fn join the transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	AddToSet(ctx context.Context, userID bson.ObjectID, field models.UserSetField, member bson.ObjectID) error
	PullFromSet(ctx context.Context, userID bson.ObjectID, field models.UserSetField, member bson.ObjectID) error
}

type PostStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	IncrementViews(ctx context.Context, id bson.ObjectID) (*models.Post, error)
}

type CommentStore interface {
	Insert(ctx context.Context, c *models.Comment) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error)
	ListByPost(ctx context.Context, postID bson.ObjectID, page models.Page) ([]models.Comment, error)
	AppendReply(ctx context.Context, commentID bson.ObjectID, reply models.Reply) (*models.Comment, error)
	UpdateContent(ctx context.Context, commentID, authorID bson.ObjectID, content string, at time.Time) (*models.Comment, error)
	DeleteByAuthor(ctx context.Context, commentID, authorID bson.ObjectID) error
}

type LikeStore interface {
	Toggle(ctx context.Context, target models.LikeTarget, actor bson.ObjectID) (models.LikeState, error)
}
