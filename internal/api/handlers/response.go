package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/flows"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func failure(c *fiber.Ctx, status int, message string, details interface{}) error {
	body := fiber.Map{
		"success": false,
		"error":   message,
	}
	if details != nil {
		body["details"] = details
	}
	return c.Status(status).JSON(body)
}

// respondError maps service errors to HTTP statuses:
// invalid input 400, unknown feature 404, generation failures 502
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *llm.ValidationError
	var contractErr *llm.ContractError

	switch {
	case errors.As(err, &validationErr):
		return failure(c, fiber.StatusBadRequest, "Invalid request", validationErr.Fields)
	case errors.Is(err, llm.ErrInvalidInput):
		return failure(c, fiber.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, flows.ErrUnknownFeature):
		return failure(c, fiber.StatusNotFound, err.Error(), nil)
	case errors.As(err, &contractErr):
		zap.L().Error("Generation output rejected", zap.String("feature", string(contractErr.Feature)),
			zap.Strings("issues", contractErr.Issues))
		return failure(c, fiber.StatusBadGateway, "Generated output was invalid", contractErr.Issues)
	case errors.Is(err, llm.ErrGenerationFailed):
		zap.L().Error("Generation failed", zap.Error(err))
		return failure(c, fiber.StatusBadGateway, "Generation failed", nil)
	default:
		zap.L().Error("Unexpected error", zap.Error(err))
		return failure(c, fiber.StatusInternalServerError, "Internal server error", nil)
	}
}
