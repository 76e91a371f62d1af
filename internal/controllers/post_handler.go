package controllers

import (
	"time"

	"social-webbase/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	Service *services.PostService
	Timeout time.Duration
}

// GetPost godoc
// @Summary      Fetch a post
// @Description  Every fetch increments the post's view counter.
// @Tags         posts
// @Produce      json
// @Param        post_id  path     string  true  "Post ID (hex ObjectID)"
// @Success      200      {object} dto.APIResponse{data=models.Post}
// @Failure      400      {object} dto.APIResponse
// @Failure      404      {object} dto.APIResponse
// @Router       /posts/{post_id} [get]
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	postID, err := paramID(c, "post_id", "post")
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	p, err := h.Service.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, p, "post fetched")
}
