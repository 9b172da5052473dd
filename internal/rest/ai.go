package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bookwise/business/recommend"
	"bookwise/domain"
	"bookwise/pkg/logger"
	"bookwise/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	AIHandler struct {
		validate        *validator.Validate
		recoService     RecommendService
		insightsService InsightsService
		timeout         time.Duration
	}

	RecommendService interface {
		Recommend(ctx context.Context, query string, limit int) (domain.RecommendationResult, error)
		TrackClick(ctx context.Context, eventID, bookID, query string) error
	}

	InsightsService interface {
		Summarize(ctx context.Context) (domain.AIMetricsSummary, error)
	}

	RecommendRequest struct {
		Query string `json:"query" validate:"required"`
		Limit int    `json:"limit"`
	}

	SelectRequest struct {
		EventID string `json:"eventId"`
		BookID  string `json:"bookId" validate:"required"`
		Query   string `json:"query" validate:"required"`
	}
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func NewAIHandler(recoService RecommendService, insightsService InsightsService) *AIHandler {
	return &AIHandler{
		validate:        validator.New(),
		recoService:     recoService,
		insightsService: insightsService,
		timeout:         10 * time.Second,
	}
}

func (h *AIHandler) Recommend(c echo.Context) error {
	var req RecommendRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()

	result, err := h.recoService.Recommend(ctx, req.Query, req.Limit)
	if err != nil {
		if errors.Is(err, recommend.ErrQueryRequired) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to build recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendTotal.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *AIHandler) Select(c echo.Context) error {
	var req SelectRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind select request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.recoService.TrackClick(ctx, req.EventID, req.BookID, req.Query)
	if err != nil {
		if errors.Is(err, recommend.ErrBookIDRequired) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to track click", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.ClickTotal.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Click tracked"))
}

func (h *AIHandler) Metrics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.insightsService.Summarize(ctx)
	if err != nil {
		logger.Error("Failed to summarize ai metrics", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}
