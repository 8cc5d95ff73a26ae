package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/api/handlers"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/api/middleware"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/config"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/flows"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/tokens"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/thumbnail"
)

// Dependencies are the services the routes are served by
type Dependencies struct {
	Flows      *flows.Service
	Thumbnails *thumbnail.Client
	Usage      *tokens.UsageTracker // nil disables usage tracking
	Config     *config.Config
}

// ErrorHandler renders errors that escape a handler in the response envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, deps Dependencies) {
	// Initialize handlers
	flowHandler := handlers.NewFlowHandler(deps.Flows, deps.Usage)
	thumbnailHandler := handlers.NewThumbnailHandler(deps.Thumbnails)
	usageHandler := handlers.NewUsageHandler(deps.Usage)

	// API group
	api := app.Group("/api")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Bearer verification only when a secret is configured
	var guard []fiber.Handler
	if deps.Config != nil && deps.Config.JWTSecret != "" {
		guard = append(guard, middleware.JWTMiddleware(deps.Config.JWTSecret))
	}

	// Flow routes
	flowRoutes := api.Group("/flows", guard...)
	flowRoutes.Get("/", flowHandler.ListFlows)
	flowRoutes.Post("/:feature", flowHandler.InvokeFlow)

	// Thumbnail image route
	api.Post("/thumbnails", append(guard, thumbnailHandler.GenerateThumbnail)...)

	// Usage route
	api.Get("/usage", append(guard, usageHandler.GetUsage)...)
}
