package routes

import (
	"io"
	"log/slog"
	"time"

	_ "social-webbase/docs"

	"social-webbase/config"
	"social-webbase/internal/controllers"
	"social-webbase/internal/middleware"
	"social-webbase/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer is built on.
type Deps struct {
	Follows  *services.FollowService
	Likes    *services.LikeService
	Comments *services.CommentService
	Posts    *services.PostService

	// Limiter caps mutations per actor; nil disables rate limiting.
	Limiter middleware.Limiter
	Log     *slog.Logger
	// AccessLog receives one line per request; nil disables it.
	AccessLog io.Writer
}

func NewApp(cfg config.Config, d Deps) *fiber.App {
	if d.Log == nil {
		d.Log = slog.Default()
	}

	app := fiber.New(fiber.Config{
		AppName:      "social-webbase",
		ErrorHandler: controllers.ErrorHandler(d.Log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if d.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
			Output: d.AccessLog,
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	mutate := []fiber.Handler{
		middleware.RequireAuth(),
		middleware.RateLimit(d.Limiter, cfg.RateLimit, time.Minute, d.Log),
	}

	timeout := cfg.RequestTimeout
	CommentRoutes(app, &controllers.CommentHandler{Service: d.Comments, Timeout: timeout}, mutate)
	FollowRoutes(app, &controllers.FollowHandler{Service: d.Follows, Timeout: timeout}, mutate)
	LikeRoutes(app, &controllers.LikeHandler{Service: d.Likes, Posts: d.Posts, Timeout: timeout}, mutate)
	PostRoutes(app, &controllers.PostHandler{Service: d.Posts, Timeout: timeout})

	return app
}

func chain(mw []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(mw)+1)
	out = append(out, mw...)
	return append(out, h)
}
