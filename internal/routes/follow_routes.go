package routes

import (
	"social-webbase/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func FollowRoutes(app *fiber.App, h *controllers.FollowHandler, mutate []fiber.Handler) {
	follow := app.Group("/follow")

	follow.Post("/togglefollow", chain(mutate, h.ToggleFollow)...)
	follow.Get("/followers/:userId", h.Followers)
	follow.Get("/following/:userId", h.Following)
}
