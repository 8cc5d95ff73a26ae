package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/thumbnail"
)

// ThumbnailHandler serves generated thumbnail images
type ThumbnailHandler struct {
	Client *thumbnail.Client
}

// NewThumbnailHandler creates a new thumbnail handler
func NewThumbnailHandler(client *thumbnail.Client) *ThumbnailHandler {
	return &ThumbnailHandler{Client: client}
}

// GenerateThumbnail renders a thumbnail image
// @Summary Generate a thumbnail image
// @Description Render a 1280x720 image from a prompt. Failures return a placeholder image, never an error.
// @Tags thumbnails
// @Accept json
// @Produce json
// @Param request body thumbnail.Request true "Thumbnail request"
// @Success 200 {object} api.SuccessResponse{data=thumbnail.Result} "Image or placeholder"
// @Failure 400 {object} api.ErrorResponse "Malformed request body"
// @Failure 401 {object} api.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /thumbnails [post]
func (h *ThumbnailHandler) GenerateThumbnail(c *fiber.Ctx) error {
	req := new(thumbnail.Request)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return failure(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		}
	}

	return success(c, h.Client.Generate(c.UserContext(), req))
}
