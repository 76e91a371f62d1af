package routes

import (
	"social-webbase/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func LikeRoutes(app *fiber.App, h *controllers.LikeHandler, mutate []fiber.Handler) {
	likes := app.Group("/likes")

	likes.Post("/togglelike", chain(mutate, h.TogglePostLike)...)
	likes.Post("/toggle/c/:comment_id", chain(mutate, h.ToggleCommentLike)...)
	likes.Post("/togglereplylike", chain(mutate, h.ToggleReplyLike)...)

	// read-only, kept on POST for existing clients
	likes.Post("/likesofpost", h.LikesOfPost)
}
