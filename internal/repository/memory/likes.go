package memory

import (
	"context"
	"fmt"

	"social-webbase/internal/models"
	"social-webbase/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type LikeRepository struct {
	s *Store
}

func (r *LikeRepository) Toggle(ctx context.Context, target models.LikeTarget, actor bson.ObjectID) (models.LikeState, error) {
	defer r.s.lock(ctx)()

	switch target.Kind {
	case models.LikePost:
		p, ok := r.s.posts[target.ID]
		if !ok {
			return models.LikeState{}, repository.ErrNotFound
		}
		next := clonePost(p)
		next.LikedBy = toggleID(p.LikedBy, actor)
		r.s.posts[target.ID] = next
		r.s.journal(ctx, func() { r.s.posts[target.ID] = p })
		return models.StateFor(next.LikedBy, actor), nil

	case models.LikeComment, models.LikeReply:
		c, ok := r.s.comments[target.ID]
		if !ok {
			return models.LikeState{}, repository.ErrNotFound
		}
		next := cloneComment(c)
		var likedBy []bson.ObjectID
		if target.Kind == models.LikeComment {
			next.LikedBy = toggleID(next.LikedBy, actor)
			likedBy = next.LikedBy
		} else {
			reply, ok := next.FindReply(target.ReplyID)
			if !ok {
				return models.LikeState{}, repository.ErrNotFound
			}
			reply.LikedBy = toggleID(reply.LikedBy, actor)
			likedBy = reply.LikedBy
		}
		r.s.comments[target.ID] = next
		r.s.journal(ctx, func() { r.s.comments[target.ID] = c })
		return models.StateFor(likedBy, actor), nil

	default:
		return models.LikeState{}, fmt.Errorf("unknown like target %q", target.Kind)
	}
}
