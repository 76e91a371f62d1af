package services

import (
	"context"
	"errors"
	"time"

	"social-webbase/internal/apperror"
	"social-webbase/internal/metrics"
	"social-webbase/internal/models"
	"social-webbase/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.opentelemetry.io/otel/attribute"
)

// LikeService toggles likes on posts, comments and replies through one
// membership toggle parameterized by target kind.
type LikeService struct {
	likes    LikeStore
	comments CommentStore
}

func NewLikeService(likes LikeStore, comments CommentStore) *LikeService {
	return &LikeService{likes: likes, comments: comments}
}

func (s *LikeService) ToggleLike(ctx context.Context, actor bson.ObjectID, target models.LikeTarget) (state models.LikeState, err error) {
	ctx, span := tracer.Start(ctx, "LikeService.ToggleLike")
	span.SetAttributes(
		attribute.String("like.kind", string(target.Kind)),
		attribute.String("like.target", target.ID.Hex()),
	)
	start := time.Now()
	defer func() {
		metrics.LikeToggles.WithLabelValues(string(target.Kind), outcome(err)).Inc()
		metrics.ObserveSince("toggle_like", start)
		endSpan(span, err)
	}()

	if err := target.Validate(); err != nil {
		return models.LikeState{}, apperror.InvalidArgument(err.Error())
	}

	state, err = s.likes.Toggle(ctx, target, actor)
	if errors.Is(err, repository.ErrNotFound) {
		return models.LikeState{}, s.notFound(ctx, target)
	}
	if err != nil {
		return models.LikeState{}, apperror.Internal("failed to toggle like", err)
	}
	return state, nil
}

func (s *LikeService) notFound(ctx context.Context, target models.LikeTarget) error {
	switch target.Kind {
	case models.LikePost:
		return apperror.NotFound("post not found")
	case models.LikeComment:
		return apperror.NotFound("comment not found")
	}
	if _, err := s.comments.FindByID(ctx, target.ID); errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("comment not found")
	}
	return apperror.NotFound("reply not found")
}
