package controllers

import (
	"time"

	"social-webbase/dto"
	"social-webbase/internal/middleware"
	"social-webbase/internal/models"
	"social-webbase/internal/services"

	"github.com/gofiber/fiber/v2"
)

type LikeHandler struct {
	Service *services.LikeService
	Posts   *services.PostService
	Timeout time.Duration
}

// TogglePostLike godoc
// @Summary      Like or unlike a post
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.TogglePostLikeReq  true  "Post to toggle"
// @Success      200   {object} dto.APIResponse{data=models.LikeState}
// @Failure      400   {object} dto.APIResponse
// @Failure      401   {object} dto.APIResponse
// @Failure      404   {object} dto.APIResponse
// @Router       /likes/togglelike [post]
func (h *LikeHandler) TogglePostLike(c *fiber.Ctx) error {
	var body dto.TogglePostLikeReq
	if err := bind(c, &body); err != nil {
		return err
	}
	postID, err := hexID(body.PostID, "post")
	if err != nil {
		return err
	}
	return h.toggle(c, models.LikeTarget{Kind: models.LikePost, ID: postID})
}

// ToggleCommentLike godoc
// @Summary      Like or unlike a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        comment_id  path     string  true  "Comment ID (hex ObjectID)"
// @Success      200         {object} dto.APIResponse{data=models.LikeState}
// @Failure      400         {object} dto.APIResponse
// @Failure      401         {object} dto.APIResponse
// @Failure      404         {object} dto.APIResponse
// @Router       /likes/toggle/c/{comment_id} [post]
func (h *LikeHandler) ToggleCommentLike(c *fiber.Ctx) error {
	commentID, err := paramID(c, "comment_id", "comment")
	if err != nil {
		return err
	}
	return h.toggle(c, models.LikeTarget{Kind: models.LikeComment, ID: commentID})
}

// ToggleReplyLike godoc
// @Summary      Like or unlike a reply
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.ToggleReplyLikeReq  true  "Parent comment and reply"
// @Success      200   {object} dto.APIResponse{data=models.LikeState}
// @Failure      400   {object} dto.APIResponse
// @Failure      401   {object} dto.APIResponse
// @Failure      404   {object} dto.APIResponse
// @Router       /likes/togglereplylike [post]
func (h *LikeHandler) ToggleReplyLike(c *fiber.Ctx) error {
	var body dto.ToggleReplyLikeReq
	if err := bind(c, &body); err != nil {
		return err
	}
	commentID, err := hexID(body.CommentID, "comment")
	if err != nil {
		return err
	}
	replyID, err := hexID(body.ReplyID, "reply")
	if err != nil {
		return err
	}
	return h.toggle(c, models.LikeTarget{Kind: models.LikeReply, ID: commentID, ReplyID: replyID})
}

func (h *LikeHandler) toggle(c *fiber.Ctx, target models.LikeTarget) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	state, err := h.Service.ToggleLike(ctx, uid, target)
	if err != nil {
		return err
	}
	msg := string(target.Kind) + " unliked"
	if state.Liked {
		msg = string(target.Kind) + " liked"
	}
	return respond(c, fiber.StatusOK, state, msg)
}

// LikesOfPost godoc
// @Summary      Who liked a post
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        body  body     dto.PostLikesReq  true  "Post"
// @Success      200   {object} dto.APIResponse{data=services.PostLikes}
// @Failure      400   {object} dto.APIResponse
// @Failure      404   {object} dto.APIResponse
// @Router       /likes/likesofpost [post]
func (h *LikeHandler) LikesOfPost(c *fiber.Ctx) error {
	var body dto.PostLikesReq
	if err := bind(c, &body); err != nil {
		return err
	}
	postID, err := hexID(body.PostID, "post")
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	likes, err := h.Posts.PostLikes(ctx, postID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, likes, "post likes fetched")
}
