// Package memory is an in-process entity store implementing the same
// contracts as the MongoDB repositories. Every call is atomic per document;
// transactions are serialized and rolled back through an undo journal.
package memory

import (
	"context"
	"errors"
	"sync"

	"social-webbase/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrNestedTransaction = errors.New("memory: nested transaction")

type Store struct {
	mu       sync.Mutex
	users    map[bson.ObjectID]*models.User
	posts    map[bson.ObjectID]*models.Post
	comments map[bson.ObjectID]*models.Comment
}

func New() *Store {
	return &Store{
		users:    map[bson.ObjectID]*models.User{},
		posts:    map[bson.ObjectID]*models.Post{},
		comments: map[bson.ObjectID]*models.Comment{},
	}
}

func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }
func (s *Store) Posts() *PostRepository       { return &PostRepository{s: s} }
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s: s} }
func (s *Store) Likes() *LikeRepository       { return &LikeRepository{s: s} }

type txKey struct{}

type txn struct {
	store *Store
	undo  []func()
}

func (t *txn) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

// WithTransaction holds the store lock for the whole of fn. Any error from
// fn, or a context that expired meanwhile, reverts every write fn made.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txFrom(ctx) != nil {
		return ErrNestedTransaction
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txn{store: s}
	err := fn(context.WithValue(ctx, txKey{}, tx))
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (s *Store) txFrom(ctx context.Context) *txn {
	tx, _ := ctx.Value(txKey{}).(*txn)
	if tx != nil && tx.store == s {
		return tx
	}
	return nil
}

// lock acquires the store mutex unless ctx already runs inside one of our
// transactions, which holds it.
func (s *Store) lock(ctx context.Context) func() {
	if s.txFrom(ctx) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) journal(ctx context.Context, undo func()) {
	if tx := s.txFrom(ctx); tx != nil {
		tx.undo = append(tx.undo, undo)
	}
}

func cloneIDs(ids []bson.ObjectID) []bson.ObjectID {
	out := make([]bson.ObjectID, len(ids))
	copy(out, ids)
	return out
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Following = cloneIDs(u.Following)
	c.Followers = cloneIDs(u.Followers)
	return &c
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.LikedBy = cloneIDs(p.LikedBy)
	return &c
}

func cloneComment(cm *models.Comment) *models.Comment {
	c := *cm
	c.LikedBy = cloneIDs(cm.LikedBy)
	c.Replies = make([]models.Reply, len(cm.Replies))
	for i, r := range cm.Replies {
		r.LikedBy = cloneIDs(r.LikedBy)
		c.Replies[i] = r
	}
	return &c
}

// toggleID flips id's membership and returns the new set.
func toggleID(ids []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	for i, v := range ids {
		if v == id {
			out := make([]bson.ObjectID, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...)
		}
	}
	return append(cloneIDs(ids), id)
}
