package memory

import (
	"context"

	"social-webbase/internal/models"
	"social-webbase/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PostRepository struct {
	s *Store
}

func (r *PostRepository) Insert(ctx context.Context, p *models.Post) error {
	defer r.s.lock(ctx)()
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	id := p.ID
	r.s.posts[id] = clonePost(p)
	r.s.journal(ctx, func() { delete(r.s.posts, id) })
	return nil
}

// Delete drops a post without touching its comments.
func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	defer r.s.lock(ctx)()
	p, ok := r.s.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.s.posts, id)
	r.s.journal(ctx, func() { r.s.posts[id] = p })
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	defer r.s.lock(ctx)()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clonePost(p), nil
}

func (r *PostRepository) IncrementViews(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	defer r.s.lock(ctx)()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Views++
	return clonePost(p), nil
}
