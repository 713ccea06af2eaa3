package main

import (
	"context"

	"portfolio-gateway/internal/adapter/api"
	"portfolio-gateway/internal/adapter/client"
	"portfolio-gateway/internal/adapter/store"
	"portfolio-gateway/internal/config"
	"portfolio-gateway/internal/domain/repository"
	"portfolio-gateway/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Remote provider is optional: without a credential the gateway
	// still serves KB answers and the canned fallback.
	var remote repository.RemoteCaller
	if cfg.HasCredential() {
		gemini, err := client.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("failed to init gemini client", zap.Error(err))
		}
		remote = usecase.NewResilientCaller(gemini, cfg.MaxRetries, logger)
	} else {
		logger.Warn("GEMINI_API_KEY not set, remote generation disabled")
	}

	// Redis-backed admission control, also optional.
	var limiter repository.RequestLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = store.NewRedisLimiter(rdb, cfg.RateLimitPerMinute)
	}

	orchestrator := usecase.NewOrchestrator(
		usecase.DefaultKnowledgeBase(),
		remote,
		cfg.HasCredential(),
		cfg.SystemInstruction,
		logger,
	)

	app := fiber.New(fiber.Config{
		AppName:      "Portfolio Chat Gateway",
		ErrorHandler: api.ErrorHandler,
	})

	handler := api.NewGenerateHandler(orchestrator)
	api.SetupRouter(app, handler, limiter, cfg.AllowedOrigins, logger)

	logger.Info("portfolio gateway listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
