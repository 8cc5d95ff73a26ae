package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/tokens"
)

// UsageHandler reports the daily usage counters
type UsageHandler struct {
	Tracker *tokens.UsageTracker
}

// NewUsageHandler creates a new usage handler. tracker may be nil.
func NewUsageHandler(tracker *tokens.UsageTracker) *UsageHandler {
	return &UsageHandler{Tracker: tracker}
}

// DailyUsage is the payload of GetUsage
type DailyUsage struct {
	Day      string                              `json:"day"`
	Enabled  bool                                `json:"enabled"`
	Features map[llm.Feature]tokens.FeatureUsage `json:"features"`
}

// GetUsage returns per-feature counters for one day
// @Summary Daily usage
// @Description Calls and token counts per feature for a UTC day
// @Tags usage
// @Produce json
// @Param day query string false "Day in YYYY-MM-DD, defaults to today"
// @Success 200 {object} api.SuccessResponse{data=handlers.DailyUsage} "Usage counters"
// @Failure 400 {object} api.ErrorResponse "Invalid day"
// @Failure 401 {object} api.ErrorResponse "Unauthorized"
// @Failure 500 {object} api.ErrorResponse "Server error"
// @Security BearerAuth
// @Router /usage [get]
func (h *UsageHandler) GetUsage(c *fiber.Ctx) error {
	day := time.Now().UTC()
	if q := c.Query("day"); q != "" {
		parsed, err := time.Parse(tokens.DayLayout, q)
		if err != nil {
			return failure(c, fiber.StatusBadRequest, "Invalid day, expected YYYY-MM-DD", nil)
		}
		day = parsed
	}

	features, err := h.Tracker.Daily(c.UserContext(), day)
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to read usage: "+err.Error(), nil)
	}

	return success(c, DailyUsage{
		Day:      day.Format(tokens.DayLayout),
		Enabled:  h.Tracker.Enabled(),
		Features: features,
	})
}
