// Package ratelimit implements a fixed-window request counter on Redis.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisLimiter struct {
	R      *redis.Client
	Prefix string
}

func NewRedis(r *redis.Client) *RedisLimiter {
	return &RedisLimiter{R: r, Prefix: "rl:"}
}

// Allow increments the counter for key and reports whether it is still
// within limit. The window starts at the first hit.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	k := l.Prefix + key
	pipe := l.R.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	n := incr.Val()
	return n <= limit, n, nil
}
