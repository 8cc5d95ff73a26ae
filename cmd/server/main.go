package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/api"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/config"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/database"
	applog "github.com/Ankit-3010/novacreate-hack2skill/internal/logger"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/flows"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/providers"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/tokens"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/thumbnail"
)

// @title NovaCreate API
// @version 1.0
// @description Generation flows for video creators: scripts, hashtags, ideas, optimization, captions, remixes and thumbnails

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	zl, err := applog.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()
	llmLogger := applog.NewLLMLogger(zl)

	// Structured generation backend
	backend, err := providers.New(cfg.LLMProvider, providers.Options{
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		Logger:        llmLogger,
	})
	if err != nil {
		zl.Fatal("Failed to initialize generation backend", zap.String("provider", cfg.LLMProvider), zap.Error(err))
	}
	defer backend.Close()

	flowService, err := flows.NewService(flows.ServiceOptions{
		Backend: backend,
		Logger:  llmLogger,
	})
	if err != nil {
		zl.Fatal("Failed to initialize flow service", zap.Error(err))
	}

	token := thumbnail.NoToken
	if cfg.PollinationsAPIKey != "" {
		token = thumbnail.BearerToken(cfg.PollinationsAPIKey)
	}
	thumbnails := thumbnail.NewClient(thumbnail.Options{
		BaseURL: cfg.ImageAPIURL,
		Model:   cfg.ImageModel,
		Token:   token,
		Logger:  llmLogger,
	})

	// Connect to Redis when usage tracking is configured
	var usage *tokens.UsageTracker
	if cfg.RedisURI != "" {
		redisClient, err := database.InitRedis(context.Background(), cfg.RedisURI)
		if err != nil {
			zl.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		usage = tokens.NewUsageTracker(redisClient.Client, cfg.UsageTTL)
	} else {
		zl.Info("REDIS_URI not set, usage tracking disabled")
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    64 * 1024 * 1024,
		ErrorHandler: api.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST",
	}))

	// Setup Swagger
	api.SetupSwagger(app)

	// Setup routes
	api.SetupRoutes(app, api.Dependencies{
		Flows:      flowService,
		Thumbnails: thumbnails,
		Usage:      usage,
		Config:     cfg,
	})

	// Start server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	zl.Info("Server started", zap.String("port", cfg.Port), zap.String("backend", flowService.Backend()),
		zap.Bool("auth", cfg.JWTSecret != ""))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	zl.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		zl.Error("Server shutdown failed", zap.Error(err))
	}
}
