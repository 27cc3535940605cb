package serverutils

import (
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// RateLimit rejects a client IP that exceeds limiter with 429. A limiter
// backend failure lets the request through.
func RateLimit(limiter ratelimit.Limiter, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		allowed, err := limiter.Allow(ctx.UserContext(), ctx.IP())
		if err != nil {
			log.Warn("RateLimit", "Limiter unavailable, allowing request", map[string]interface{}{"error": err.Error()})
			return ctx.Next()
		}
		if !allowed {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests. Please try again later.")
		}
		return ctx.Next()
	}
}
