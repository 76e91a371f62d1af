package routes

import (
	"social-webbase/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func CommentRoutes(app *fiber.App, h *controllers.CommentHandler, mutate []fiber.Handler) {
	comments := app.Group("/comments")

	// static segment registered before /c/:commentId
	comments.Post("/c/replytocomment", chain(mutate, h.Reply)...)
	comments.Patch("/c/:commentId", chain(mutate, h.Update)...)
	comments.Delete("/c/:commentId", chain(mutate, h.Delete)...)

	// GET  /comments/:post_id?limit=20&cursor=...
	comments.Get("/:post_id", h.List)
	comments.Post("/:post_id", chain(mutate, h.Create)...)
}
