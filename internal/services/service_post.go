package services

import (
	"context"
	"errors"

	"social-webbase/internal/apperror"
	"social-webbase/internal/models"
	"social-webbase/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PostService struct {
	posts PostStore
}

func NewPostService(posts PostStore) *PostService {
	return &PostService{posts: posts}
}

type PostLikes struct {
	LikedBy   []bson.ObjectID `json:"likedBy"`
	LikeCount int             `json:"likeCount"`
}

// GetPost returns the post and counts the fetch as a view. Every fetch
// counts, repeated reads by the same viewer included.
func (s *PostService) GetPost(ctx context.Context, postID bson.ObjectID) (*models.Post, error) {
	p, err := s.posts.IncrementViews(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("post not found")
	}
	if err != nil {
		return nil, apperror.Internal("failed to fetch post", err)
	}
	return p, nil
}

func (s *PostService) PostLikes(ctx context.Context, postID bson.ObjectID) (*PostLikes, error) {
	p, err := s.posts.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("post not found")
	}
	if err != nil {
		return nil, apperror.Internal("failed to fetch post likes", err)
	}
	return &PostLikes{LikedBy: nonNil(p.LikedBy), LikeCount: len(p.LikedBy)}, nil
}
