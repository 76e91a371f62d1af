package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"social-webbase/internal/apperror"
	"social-webbase/internal/metrics"
	"social-webbase/internal/models"
	"social-webbase/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.opentelemetry.io/otel/attribute"
)

type FollowState string

const (
	StateFollowed   FollowState = "followed"
	StateUnfollowed FollowState = "unfollowed"
)

// FollowResult carries both user snapshots as committed by the toggle.
type FollowResult struct {
	State  FollowState  `json:"state"`
	User   *models.User `json:"user"`
	Target *models.User `json:"userToFollow"`
}

type FollowService struct {
	tx    Transactor
	users UserStore
	log   *slog.Logger
}

func NewFollowService(tx Transactor, users UserStore, log *slog.Logger) *FollowService {
	if log == nil {
		log = slog.Default()
	}
	return &FollowService{tx: tx, users: users, log: log}
}

// ToggleFollow flips the follow edge actor -> target. Both user documents are
// written in one transaction: unfollow only when both sides agree the edge
// exists, otherwise follow, which also repairs a half-written edge.
func (s *FollowService) ToggleFollow(ctx context.Context, actorID, targetID bson.ObjectID) (res *FollowResult, err error) {
	ctx, span := tracer.Start(ctx, "FollowService.ToggleFollow")
	span.SetAttributes(
		attribute.String("actor.id", actorID.Hex()),
		attribute.String("target.id", targetID.Hex()),
	)
	start := time.Now()
	defer func() {
		label := outcome(err)
		if err == nil {
			label = string(res.State)
		}
		metrics.FollowToggles.WithLabelValues(label).Inc()
		metrics.ObserveSince("toggle_follow", start)
		endSpan(span, err)
	}()

	if actorID == targetID {
		return nil, apperror.InvalidOperation("you cannot follow yourself")
	}

	var out FollowResult
	txErr := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		target, err := s.users.FindByID(ctx, targetID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("user to follow not found")
		}
		if err != nil {
			return err
		}
		actor, err := s.users.FindByID(ctx, actorID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("user not found")
		}
		if err != nil {
			return err
		}

		isFollowedBack := target.HasFollower(actorID)
		isFollowing := actor.IsFollowing(targetID)

		if isFollowedBack && isFollowing {
			if err := s.users.PullFromSet(ctx, actorID, models.FieldFollowing, targetID); err != nil {
				return err
			}
			if err := s.users.PullFromSet(ctx, targetID, models.FieldFollowers, actorID); err != nil {
				return err
			}
			out.State = StateUnfollowed
		} else {
			if err := s.users.AddToSet(ctx, actorID, models.FieldFollowing, targetID); err != nil {
				return err
			}
			if err := s.users.AddToSet(ctx, targetID, models.FieldFollowers, actorID); err != nil {
				return err
			}
			out.State = StateFollowed
		}

		if out.User, err = s.users.FindByID(ctx, actorID); err != nil {
			return err
		}
		if out.Target, err = s.users.FindByID(ctx, targetID); err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		if apperror.Is(txErr, apperror.KindNotFound) {
			return nil, txErr
		}
		s.log.Error("toggle follow rolled back",
			"actor", actorID.Hex(), "target", targetID.Hex(), "error", txErr)
		return nil, apperror.TransactionFailed("failed to toggle follow", txErr)
	}

	s.log.Debug("follow toggled", "actor", actorID.Hex(), "target", targetID.Hex(), "state", out.State)
	return &out, nil
}

// Followers lists the ids following userID.
func (s *FollowService) Followers(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return nonNil(u.Followers), nil
}

// Following lists the ids userID follows.
func (s *FollowService) Following(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return nonNil(u.Following), nil
}

func (s *FollowService) findUser(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("user not found")
	}
	if err != nil {
		return nil, apperror.Internal("failed to load user", err)
	}
	return u, nil
}

func nonNil(ids []bson.ObjectID) []bson.ObjectID {
	if ids == nil {
		return []bson.ObjectID{}
	}
	return ids
}
