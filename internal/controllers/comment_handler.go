package controllers

import (
	"time"

	"social-webbase/config"
	"social-webbase/dto"
	"social-webbase/internal/apperror"
	"social-webbase/internal/cursor"
	"social-webbase/internal/middleware"
	"social-webbase/internal/models"
	"social-webbase/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	Service *services.CommentService
	Timeout time.Duration
}

// List godoc
// @Summary      List comments of a post
// @Description  Comments oldest first. Without limit or cursor the whole list is returned.
// @Tags         comments
// @Produce      json
// @Param        post_id  path   string  true   "Post ID (hex ObjectID)"
// @Param        limit    query  int     false  "Max items per page" minimum(1) maximum(100)
// @Param        cursor   query  string  false  "Opaque next-page cursor"
// @Success      200      {object} dto.APIResponse{data=dto.ListCommentsResp}
// @Failure      400      {object} dto.APIResponse
// @Failure      404      {object} dto.APIResponse
// @Router       /comments/{post_id} [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := paramID(c, "post_id", "post")
	if err != nil {
		return err
	}
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	res, err := h.Service.ListComments(ctx, postID, page)
	if err != nil {
		return err
	}

	out := dto.ListCommentsResp{Comments: res.Comments, HasMore: res.HasMore}
	if res.HasMore {
		last := res.Comments[len(res.Comments)-1]
		next := cursor.EncodeCommentCursor(last.CreatedAt, last.ID)
		out.NextCursor = &next
	}
	return respond(c, fiber.StatusOK, out, "comments fetched")
}

func pageFromQuery(c *fiber.Ctx) (models.Page, error) {
	var page models.Page
	rawLimit, curStr := c.Query("limit"), c.Query("cursor")
	if rawLimit == "" && curStr == "" {
		return page, nil
	}

	limit := int64(c.QueryInt("limit", config.DefaultLimitComments))
	if limit <= 0 {
		limit = config.DefaultLimitComments
	}
	if limit > config.MaxLimitComments {
		limit = config.MaxLimitComments
	}
	page.Limit = limit

	if curStr != "" {
		at, id, err := cursor.DecodeCommentCursor(curStr)
		if err != nil {
			return page, apperror.InvalidArgument("invalid cursor")
		}
		page.AfterTime, page.AfterID = at, id
	}
	return page, nil
}

// Create godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path     string                 true  "Post ID (hex ObjectID)"
// @Param        body     body     dto.CommentContentReq  true  "Comment content"
// @Success      201      {object} dto.APIResponse{data=models.Comment}
// @Failure      400      {object} dto.APIResponse
// @Failure      401      {object} dto.APIResponse
// @Failure      404      {object} dto.APIResponse
// @Router       /comments/{post_id} [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "post_id", "post")
	if err != nil {
		return err
	}
	var body dto.CommentContentReq
	if err := bind(c, &body); err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	com, err := h.Service.AddComment(ctx, uid, postID, body.Content)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, com, "comment created")
}

// Reply godoc
// @Summary      Reply to a comment
// @Description  Appends a reply and returns the parent comment.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.ReplyToCommentReq  true  "Parent comment and reply content"
// @Success      201   {object} dto.APIResponse{data=models.Comment}
// @Failure      400   {object} dto.APIResponse
// @Failure      401   {object} dto.APIResponse
// @Failure      404   {object} dto.APIResponse
// @Router       /comments/c/replytocomment [post]
func (h *CommentHandler) Reply(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	var body dto.ReplyToCommentReq
	if err := bind(c, &body); err != nil {
		return err
	}
	commentID, err := hexID(body.CommentID, "comment")
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	com, err := h.Service.ReplyToComment(ctx, uid, commentID, body.Content)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, com, "reply added")
}

// Update godoc
// @Summary      Edit a comment
// @Description  Only the author may edit; replies are untouched.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path     string                 true  "Comment ID (hex ObjectID)"
// @Param        body       body     dto.CommentContentReq  true  "New content"
// @Success      200        {object} dto.APIResponse{data=models.Comment}
// @Failure      400        {object} dto.APIResponse
// @Failure      403        {object} dto.APIResponse
// @Failure      404        {object} dto.APIResponse
// @Router       /comments/c/{commentId} [patch]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "commentId", "comment")
	if err != nil {
		return err
	}
	var body dto.CommentContentReq
	if err := bind(c, &body); err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	com, err := h.Service.UpdateComment(ctx, uid, commentID, body.Content)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, com, "comment updated")
}

// Delete godoc
// @Summary      Delete a comment
// @Description  Only the author may delete; replies go with the comment.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path     string  true  "Comment ID (hex ObjectID)"
// @Success      200        {object} dto.APIResponse
// @Failure      403        {object} dto.APIResponse
// @Failure      404        {object} dto.APIResponse
// @Router       /comments/c/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "commentId", "comment")
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	if err := h.Service.DeleteComment(ctx, uid, commentID); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, nil, "comment deleted")
}
