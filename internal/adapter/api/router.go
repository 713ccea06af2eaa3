package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"portfolio-gateway/internal/domain/repository"
)

// SetupRouter wires middleware and routes. limiter may be nil when no
// Redis address is configured.
func SetupRouter(app *fiber.App, handler *GenerateHandler, limiter repository.RequestLimiter, allowedOrigins string, log *zap.Logger) {
	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	app.Get("/_health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("ok")
	})

	generate := app.Group("/api")
	if limiter != nil {
		generate.Use(RateLimit(limiter, log))
	}
	generate.Post("/generate", handler.HandleGenerate)
}
