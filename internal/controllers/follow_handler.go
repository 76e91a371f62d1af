package controllers

import (
	"context"
	"time"

	"social-webbase/dto"
	"social-webbase/internal/middleware"
	"social-webbase/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type FollowHandler struct {
	Service *services.FollowService
	Timeout time.Duration
}

// ToggleFollow godoc
// @Summary      Follow or unfollow a user
// @Description  Unfollows when both sides already record the edge, otherwise follows. Both users are updated in one transaction.
// @Tags         follow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.ToggleFollowReq  true  "User to follow"
// @Success      200   {object} dto.APIResponse{data=services.FollowResult}
// @Failure      400   {object} dto.APIResponse
// @Failure      401   {object} dto.APIResponse
// @Failure      404   {object} dto.APIResponse
// @Failure      500   {object} dto.APIResponse
// @Router       /follow/togglefollow [post]
func (h *FollowHandler) ToggleFollow(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	var body dto.ToggleFollowReq
	if err := bind(c, &body); err != nil {
		return err
	}
	targetID, err := hexID(body.UserToFollowID, "user")
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	res, err := h.Service.ToggleFollow(ctx, uid, targetID)
	if err != nil {
		return err
	}
	msg := "user followed"
	if res.State == services.StateUnfollowed {
		msg = "user unfollowed"
	}
	return respond(c, fiber.StatusOK, res, msg)
}

// Followers godoc
// @Summary      List a user's followers
// @Tags         follow
// @Produce      json
// @Param        userId  path     string  true  "User ID (hex ObjectID)"
// @Success      200     {object} dto.APIResponse{data=dto.FollowListResp}
// @Failure      400     {object} dto.APIResponse
// @Failure      404     {object} dto.APIResponse
// @Router       /follow/followers/{userId} [get]
func (h *FollowHandler) Followers(c *fiber.Ctx) error {
	return h.list(c, h.Service.Followers, "followers fetched")
}

// Following godoc
// @Summary      List the users a user follows
// @Tags         follow
// @Produce      json
// @Param        userId  path     string  true  "User ID (hex ObjectID)"
// @Success      200     {object} dto.APIResponse{data=dto.FollowListResp}
// @Failure      400     {object} dto.APIResponse
// @Failure      404     {object} dto.APIResponse
// @Router       /follow/following/{userId} [get]
func (h *FollowHandler) Following(c *fiber.Ctx) error {
	return h.list(c, h.Service.Following, "following fetched")
}

func (h *FollowHandler) list(c *fiber.Ctx, fetch func(context.Context, bson.ObjectID) ([]bson.ObjectID, error), msg string) error {
	userID, err := paramID(c, "userId", "user")
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	ids, err := fetch(ctx, userID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, dto.FollowListResp{UserID: userID, Users: ids, Count: len(ids)}, msg)
}
