package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-gateway/internal/domain/entity"
	"portfolio-gateway/internal/domain/repository"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a UUID so gateway logs can be
// correlated with provider-side failures.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDHeader, id)
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}

// RateLimit rejects clients over their request window with a 429. The
// limiter fails open; a Redis error is logged and the request served.
func RateLimit(limiter repository.RequestLimiter, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, err := limiter.Allow(c.Context(), c.IP())
		if err != nil {
			logger.Warn("rate limiter unavailable, serving request", zap.Error(err))
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": entity.ErrRateLimitExceeded.Error(),
			})
		}
		return c.Next()
	}
}
