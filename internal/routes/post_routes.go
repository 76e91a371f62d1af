package routes

import (
	"social-webbase/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func PostRoutes(app *fiber.App, h *controllers.PostHandler) {
	app.Get("/posts/:post_id", h.GetPost)
}
