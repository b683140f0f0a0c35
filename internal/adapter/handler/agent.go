package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/callsight/callsight/errors"
	dto "github.com/callsight/callsight/internal/adapter/dto/agent"
	agentuc "github.com/callsight/callsight/internal/usecase/agent"
)

const defaultInteractionLimit = 20

// Agent handles transcript analysis HTTP endpoints
type Agent struct {
	service agentuc.Service
	logger  *zap.Logger
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(service agentuc.Service, logger *zap.Logger) *Agent {
	return &Agent{
		service: service,
		logger:  logger,
	}
}

// Analyze runs the full analysis pipeline over a transcript
// POST /v1/agent/analyze
func (h *Agent) Analyze(c echo.Context) error {
	req, err := h.bindAnalyzeRequest(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	analysis, err := h.service.Analyze(c.Request().Context(), req.Transcript, req.Context)
	if err != nil {
		return handleError(c, h.logger, errors.ErrAnalysisFailed(err))
	}

	return handleSuccess(c, h.logger, analysis)
}

// QuickSummary runs the analysis and returns only the headline fields
// POST /v1/agent/quick-summary
func (h *Agent) QuickSummary(c echo.Context) error {
	req, err := h.bindAnalyzeRequest(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	analysis, err := h.service.Analyze(c.Request().Context(), req.Transcript, req.Context)
	if err != nil {
		return handleError(c, h.logger, errors.ErrAnalysisFailed(err))
	}

	return handleSuccess(c, h.logger, dto.NewQuickSummaryResponse(analysis))
}

// ListInteractions returns recently analyzed interactions
// GET /v1/agent/interactions
func (h *Agent) ListInteractions(c echo.Context) error {
	var req dto.ListInteractionsRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrInvalidArgument("limit must be between 1 and 100"))
	}
	if req.Limit == 0 {
		req.Limit = defaultInteractionLimit
	}

	interactions, err := h.service.ListInteractions(c.Request().Context(), req.Limit)
	if err != nil {
		return handleError(c, h.logger, errors.ErrDBQueryFailed(err))
	}

	return handleSuccess(c, h.logger, dto.NewInteractionResponses(interactions))
}

func (h *Agent) bindAnalyzeRequest(c echo.Context) (*dto.AnalyzeRequest, error) {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.ErrInvalidPayload()
	}

	if strings.TrimSpace(req.Transcript) == "" {
		return nil, errors.ErrMissingTranscript()
	}

	if err := c.Validate(&req); err != nil {
		return nil, errors.ErrInvalidContext(req.Context)
	}

	return &req, nil
}
