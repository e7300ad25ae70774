package middleware

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond rps (with the given burst) using a single
// process-wide token bucket. A non-positive rps disables limiting.
// Rejections are returned as fiber.ErrTooManyRequests so the global error handler renders them.
func RateLimit(rps float64, burst int) fiber.Handler {
	if rps <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return fiber.ErrTooManyRequests
		}
		return c.Next()
	}
}
