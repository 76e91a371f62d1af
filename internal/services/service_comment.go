package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"social-webbase/internal/apperror"
	"social-webbase/internal/metrics"
	"social-webbase/internal/models"
	"social-webbase/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CommentService manages comments and their append-only reply lists.
// Update and delete are gated on the stored author id.
type CommentService struct {
	posts    PostStore
	comments CommentStore
	log      *slog.Logger
}

func NewCommentService(posts PostStore, comments CommentStore, log *slog.Logger) *CommentService {
	if log == nil {
		log = slog.Default()
	}
	return &CommentService{posts: posts, comments: comments, log: log}
}

// CommentPage is one window of a post's comments in creation order.
type CommentPage struct {
	Comments []models.Comment
	HasMore  bool
}

func cleanContent(content string) (string, error) {
	txt := strings.TrimSpace(content)
	if txt == "" {
		return "", apperror.InvalidArgument("comment content is required")
	}
	return txt, nil
}

func (s *CommentService) track(op string, start time.Time, err error) {
	metrics.CommentWrites.WithLabelValues(op, outcome(err)).Inc()
	metrics.ObserveSince(op, start)
}

func (s *CommentService) AddComment(ctx context.Context, actor, postID bson.ObjectID, content string) (c *models.Comment, err error) {
	ctx, span := tracer.Start(ctx, "CommentService.AddComment")
	defer func(start time.Time) { s.track("add_comment", start, err); endSpan(span, err) }(time.Now())

	txt, err := cleanContent(content)
	if err != nil {
		return nil, err
	}
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	at := now()
	c = &models.Comment{
		ID:        bson.NewObjectID(),
		PostID:    postID,
		UserID:    actor,
		Content:   txt,
		LikedBy:   []bson.ObjectID{},
		Replies:   []models.Reply{},
		CreatedAt: at,
		UpdatedAt: at,
	}
	if err := s.comments.Insert(ctx, c); err != nil {
		return nil, apperror.Internal("failed to create comment", err)
	}
	return c, nil
}

func (s *CommentService) ReplyToComment(ctx context.Context, actor, commentID bson.ObjectID, content string) (c *models.Comment, err error) {
	ctx, span := tracer.Start(ctx, "CommentService.ReplyToComment")
	defer func(start time.Time) { s.track("reply_to_comment", start, err); endSpan(span, err) }(time.Now())

	txt, err := cleanContent(content)
	if err != nil {
		return nil, err
	}

	reply := models.Reply{
		ID:        bson.NewObjectID(),
		UserID:    actor,
		Content:   txt,
		LikedBy:   []bson.ObjectID{},
		CreatedAt: now(),
	}
	c, err = s.comments.AppendReply(ctx, commentID, reply)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("comment not found")
	}
	if err != nil {
		return nil, apperror.Internal("failed to add reply", err)
	}
	return c, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, actor, commentID bson.ObjectID, content string) (c *models.Comment, err error) {
	ctx, span := tracer.Start(ctx, "CommentService.UpdateComment")
	defer func(start time.Time) { s.track("update_comment", start, err); endSpan(span, err) }(time.Now())

	txt, err := cleanContent(content)
	if err != nil {
		return nil, err
	}
	if err := s.requireAuthor(ctx, actor, commentID, "update"); err != nil {
		return nil, err
	}

	c, err = s.comments.UpdateContent(ctx, commentID, actor, txt, now())
	if errors.Is(err, repository.ErrNotFound) {
		// deleted between the ownership check and the write
		return nil, apperror.NotFound("comment not found")
	}
	if err != nil {
		return nil, apperror.Internal("failed to update comment", err)
	}
	return c, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, actor, commentID bson.ObjectID) (err error) {
	ctx, span := tracer.Start(ctx, "CommentService.DeleteComment")
	defer func(start time.Time) { s.track("delete_comment", start, err); endSpan(span, err) }(time.Now())

	if err := s.requireAuthor(ctx, actor, commentID, "delete"); err != nil {
		return err
	}
	err = s.comments.DeleteByAuthor(ctx, commentID, actor)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("comment not found")
	}
	if err != nil {
		return apperror.Internal("failed to delete comment", err)
	}
	return nil
}

// ListComments returns comments of a post oldest first. A page with a limit
// returns at most that many and reports whether more remain.
func (s *CommentService) ListComments(ctx context.Context, postID bson.ObjectID, page models.Page) (_ *CommentPage, err error) {
	ctx, span := tracer.Start(ctx, "CommentService.ListComments")
	defer func() { endSpan(span, err) }()

	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	query := page
	if page.Limit > 0 {
		query.Limit = page.Limit + 1
	}
	items, err := s.comments.ListByPost(ctx, postID, query)
	if err != nil {
		return nil, apperror.Internal("failed to list comments", err)
	}

	out := &CommentPage{Comments: items}
	if page.Limit > 0 && int64(len(items)) > page.Limit {
		out.Comments = items[:page.Limit]
		out.HasMore = true
	}
	return out, nil
}

func (s *CommentService) requirePost(ctx context.Context, postID bson.ObjectID) error {
	_, err := s.posts.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("post not found")
	}
	if err != nil {
		return apperror.Internal("failed to load post", err)
	}
	return nil
}

// requireAuthor compares ids by value; the author is stored as a bare id.
func (s *CommentService) requireAuthor(ctx context.Context, actor, commentID bson.ObjectID, action string) error {
	c, err := s.comments.FindByID(ctx, commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("comment not found")
	}
	if err != nil {
		return apperror.Internal("failed to load comment", err)
	}
	if c.UserID != actor {
		s.log.Warn("comment ownership check failed",
			"comment", commentID.Hex(), "actor", actor.Hex(), "action", action)
		return apperror.Forbidden("user not authorized to " + action + " this comment")
	}
	return nil
}
