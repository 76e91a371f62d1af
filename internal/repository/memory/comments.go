package memory

import (
	"bytes"
	"context"
	"slices"
	"time"

	"social-webbase/internal/models"
	"social-webbase/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentRepository struct {
	s *Store
}

func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) error {
	defer r.s.lock(ctx)()
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	id := c.ID
	r.s.comments[id] = cloneComment(c)
	r.s.journal(ctx, func() { delete(r.s.comments, id) })
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error) {
	defer r.s.lock(ctx)()
	c, ok := r.s.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneComment(c), nil
}

func compareCommentOrder(at time.Time, id bson.ObjectID, bt time.Time, bid bson.ObjectID) int {
	if c := at.Compare(bt); c != 0 {
		return c
	}
	return bytes.Compare(id[:], bid[:])
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID bson.ObjectID, page models.Page) ([]models.Comment, error) {
	defer r.s.lock(ctx)()
	items := []models.Comment{}
	for _, c := range r.s.comments {
		if c.PostID != postID {
			continue
		}
		if !page.AfterID.IsZero() && compareCommentOrder(c.CreatedAt, c.ID, page.AfterTime, page.AfterID) <= 0 {
			continue
		}
		items = append(items, *cloneComment(c))
	}
	slices.SortFunc(items, func(a, b models.Comment) int {
		return compareCommentOrder(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	if page.Limit > 0 && int64(len(items)) > page.Limit {
		items = items[:page.Limit]
	}
	return items, nil
}

func (r *CommentRepository) AppendReply(ctx context.Context, commentID bson.ObjectID, reply models.Reply) (*models.Comment, error) {
	return r.replace(ctx, commentID, func(c *models.Comment) bool {
		reply.LikedBy = cloneIDs(reply.LikedBy)
		c.Replies = append(c.Replies, reply)
		return true
	})
}

func (r *CommentRepository) UpdateContent(ctx context.Context, commentID, authorID bson.ObjectID, content string, at time.Time) (*models.Comment, error) {
	return r.replace(ctx, commentID, func(c *models.Comment) bool {
		if c.UserID != authorID {
			return false
		}
		c.Content = content
		c.UpdatedAt = at
		return true
	})
}

func (r *CommentRepository) DeleteByAuthor(ctx context.Context, commentID, authorID bson.ObjectID) error {
	defer r.s.lock(ctx)()
	c, ok := r.s.comments[commentID]
	if !ok || c.UserID != authorID {
		return repository.ErrNotFound
	}
	delete(r.s.comments, commentID)
	r.s.journal(ctx, func() { r.s.comments[commentID] = c })
	return nil
}

// replace applies fn to a copy of the comment and stores the copy when fn
// accepts it; a rejected or missing comment yields ErrNotFound.
func (r *CommentRepository) replace(ctx context.Context, id bson.ObjectID, fn func(*models.Comment) bool) (*models.Comment, error) {
	defer r.s.lock(ctx)()
	prev, ok := r.s.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	next := cloneComment(prev)
	if !fn(next) {
		return nil, repository.ErrNotFound
	}
	r.s.comments[id] = next
	r.s.journal(ctx, func() { r.s.comments[id] = prev })
	return cloneComment(next), nil
}
