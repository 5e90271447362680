package serverutils

import (
	"context"
	"fmt"
	"time"

	"github.com/LionGx2004/cannatracker/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimitStore is the slice of the redis client the limiter needs.
// *redis.Client satisfies it.
type RateLimitStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RateLimitMiddleware caps requests per verified user inside a fixed window,
// backed by a redis counter. With no store the limiter is disabled, and every
// redis failure fails open: the upstream gateway enforces its own limits
// either way. A counter key that lost its TTL (EXPIRE failed or the process
// died between INCR and EXPIRE) is deleted rather than left to block the
// user forever.
func RateLimitMiddleware(store RateLimitStore, limit int, window time.Duration, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if store == nil || limit <= 0 {
			return ctx.Next()
		}

		userId, _ := ctx.Locals(LocalsUserId).(string)
		if userId == "" {
			return ctx.Next()
		}

		key := fmt.Sprintf("ratelimit:chat:%s", userId)
		count, err := store.Incr(ctx.Context(), key).Result()
		if err != nil {
			log.Warn("ratelimit", "redis unavailable, skipping limit", map[string]interface{}{
				"error": err.Error(),
			})
			return ctx.Next()
		}

		if count == 1 {
			if err := store.Expire(ctx.Context(), key, window).Err(); err != nil {
				log.Warn("ratelimit", "failed to set window expiry, dropping counter", map[string]interface{}{
					"error": err.Error(),
				})
				store.Del(ctx.Context(), key)
				return ctx.Next()
			}
		}

		if count > int64(limit) {
			ttl, err := store.TTL(ctx.Context(), key).Result()
			if err != nil {
				log.Warn("ratelimit", "redis unavailable, skipping limit", map[string]interface{}{
					"error": err.Error(),
				})
				return ctx.Next()
			}
			if ttl < 0 {
				// Counter without expiry, the window is broken. Reset it
				// instead of limiting forever.
				store.Del(ctx.Context(), key)
				return ctx.Next()
			}
			return ErrRateLimited
		}
		return ctx.Next()
	}
}
