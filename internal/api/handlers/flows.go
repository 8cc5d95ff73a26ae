package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/api/middleware"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/flows"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/tokens"
)

// FlowHandler exposes the generation flows over HTTP
type FlowHandler struct {
	Flows *flows.Service
	Usage *tokens.UsageTracker
}

// NewFlowHandler creates a new flow handler. usage may be nil.
func NewFlowHandler(service *flows.Service, usage *tokens.UsageTracker) *FlowHandler {
	return &FlowHandler{
		Flows: service,
		Usage: usage,
	}
}

// FlowList is the payload of ListFlows
type FlowList struct {
	Backend  string        `json:"backend"`
	Features []llm.Feature `json:"features"`
}

// ListFlows returns the available features
// @Summary List flows
// @Description List the generation features and the active backend
// @Tags flows
// @Produce json
// @Success 200 {object} api.SuccessResponse{data=handlers.FlowList} "Available flows"
// @Failure 401 {object} api.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /flows [get]
func (h *FlowHandler) ListFlows(c *fiber.Ctx) error {
	return success(c, FlowList{
		Backend:  h.Flows.Backend(),
		Features: h.Flows.Features(),
	})
}

// InvokeFlow runs one flow with the JSON request body
// @Summary Run a flow
// @Description Validate the request, make one generation call and return the checked output
// @Tags flows
// @Accept json
// @Produce json
// @Param feature path string true "Feature" Enums(scriptAndHooks, hashtags, videoIdeas, optimizeContent, captions, remix, thumbnailPrompt)
// @Param request body object true "Request of the selected feature"
// @Success 200 {object} api.SuccessResponse{data=flows.Invocation} "Flow output"
// @Failure 400 {object} api.ErrorResponse "Invalid request"
// @Failure 401 {object} api.ErrorResponse "Unauthorized"
// @Failure 404 {object} api.ErrorResponse "Unknown feature"
// @Failure 502 {object} api.ErrorResponse "Generation failed"
// @Security BearerAuth
// @Router /flows/{feature} [post]
func (h *FlowHandler) InvokeFlow(c *fiber.Ctx) error {
	feature := llm.Feature(c.Params("feature"))

	// fiber reuses the body buffer after the handler returns
	body := append([]byte(nil), c.Body()...)

	inv, err := h.Flows.Invoke(c.UserContext(), feature, body)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Usage.Record(c.UserContext(), tokens.Entry{
		Timestamp: time.Now(),
		Feature:   feature,
		Usage:     inv.Usage,
	}); err != nil {
		zap.L().Warn("Failed to record usage", zap.String("feature", string(feature)),
			zap.String("call_id", inv.ID), zap.Error(err))
	}

	zap.L().Info("Flow invoked", zap.String("feature", string(feature)), zap.String("call_id", inv.ID),
		zap.String("creator", middleware.CreatorID(c)), zap.Duration("duration", inv.Duration))

	return success(c, inv)
}
