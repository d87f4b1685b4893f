package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/tubescope/tubescope-go/internal/analyzer"
	"github.com/tubescope/tubescope-go/internal/middleware"
	"github.com/tubescope/tubescope-go/internal/model"
	"github.com/tubescope/tubescope-go/internal/service"
	"github.com/tubescope/tubescope-go/internal/youtube"
)

type AnalyzeHandler struct {
	svc *service.AnalyzeService
}

func NewAnalyzeHandler(svc *service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// Analyze handles POST /api/analyze
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var req model.AnalyzeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	channels, errMsg := middleware.ValidateChannels(req.Channels)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", errMsg)
	}
	req.Channels = channels

	targetURL, errMsg := middleware.ValidateTargetURL(req.TargetVideoURL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", errMsg)
	}
	req.TargetVideoURL = targetURL

	start := time.Now()
	resp, err := h.svc.Analyze(c.Context(), req)
	observeAnalysis(time.Since(start), err)

	if err != nil {
		if errors.Is(err, analyzer.ErrNoChannels) || errors.Is(err, analyzer.ErrNoText) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
		}
		var resErr *youtube.ResolutionError
		if errors.As(err, &resErr) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "RESOLUTION_FAILED", resErr.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Analysis failed")
	}

	return c.JSON(resp)
}

// observeAnalysis records analysis metrics when the collectors are registered
// (InitMetrics runs in main, not in handler unit tests).
func observeAnalysis(elapsed time.Duration, err error) {
	if Metrics.AnalysesTotal == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	Metrics.AnalysesTotal.WithLabelValues(outcome).Inc()
	Metrics.AnalysisDuration.Observe(elapsed.Seconds())
}
