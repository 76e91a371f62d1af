// Package repository holds the MongoDB-backed entity store.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ErrNotFound is returned when a filter matches no document.
var ErrNotFound = errors.New("document not found")

const (
	ColUsers    = "users"
	ColPosts    = "posts"
	ColComments = "comments"
)

// Mongo groups the per-collection repositories sharing one client so that
// they can take part in the same session transaction.
type Mongo struct {
	Client   *mongo.Client
	Users    *UserRepository
	Posts    *PostRepository
	Comments *CommentRepository
	Likes    *LikeRepository
}

func New(client *mongo.Client, dbName string) *Mongo {
	db := client.Database(dbName)
	return &Mongo{
		Client:   client,
		Users:    &UserRepository{Col: db.Collection(ColUsers)},
		Posts:    &PostRepository{Col: db.Collection(ColPosts)},
		Comments: &CommentRepository{Col: db.Collection(ColComments)},
		Likes: &LikeRepository{
			ColPosts:    db.Collection(ColPosts),
			ColComments: db.Collection(ColComments),
		},
	}
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
