package middleware

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"social-webbase/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// Limiter counts hits for key inside a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error)
}

// RateLimit caps mutations per authenticated actor. A limiter failure lets
// the request through so a Redis outage does not take writes down.
func RateLimit(l Limiter, limit int64, window time.Duration, log *slog.Logger) fiber.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(c *fiber.Ctx) error {
		if l == nil || limit <= 0 {
			return c.Next()
		}
		uid, err := UIDObjectID(c)
		if err != nil {
			return err
		}

		ok, n, err := l.Allow(c.UserContext(), "mut:"+uid.Hex(), limit, window)
		if err != nil {
			log.Warn("rate limiter unavailable", "err", err, "user", uid.Hex())
			return c.Next()
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(max(limit-n, 0), 10))
		if !ok {
			return apperror.New(apperror.KindRateLimited, "rate limit exceeded")
		}
		return c.Next()
	}
}
