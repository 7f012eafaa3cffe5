package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SOLOMA2/RecipeApp/internal/domain"
	"github.com/SOLOMA2/RecipeApp/internal/usecase"
)

const (
	defaultSuggestLimit = 5
	maxSuggestLimit     = 10
)

// Handler holds dependencies for the nutrition HTTP handlers.
type Handler struct {
	nutrition *usecase.NutritionService
	logger    zerolog.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(nutrition *usecase.NutritionService, logger zerolog.Logger) *Handler {
	return &Handler{
		nutrition: nutrition,
		logger:    logger.With().Str("component", "http").Logger(),
	}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "recipeapp-nutrition",
	})
}

// Suggest handles GET /api/v1/nutrition/suggest?query=...&limit=...
// A blank query yields an empty list, never an error.
func (h *Handler) Suggest(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusOK, []domain.Suggestion{})
		return
	}

	limit := defaultSuggestLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	limit = clamp(limit, 1, maxSuggestLimit)

	c.JSON(http.StatusOK, h.nutrition.Suggest(query, limit))
}

// Lookup handles POST /api/v1/nutrition/lookup. Not-found and
// service-unavailable are distinct outcomes: the first invites manual
// entry, the second signals a temporarily degraded external service.
func (h *Handler) Lookup(c *gin.Context) {
	var req domain.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn().Err(err).Msg("invalid lookup request body")
		c.JSON(http.StatusBadRequest, gin.H{"message": "query and a positive weightGrams are required"})
		return
	}

	info, err := h.nutrition.Lookup(c.Request.Context(), req.Query, req.WeightGrams)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, info)
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": "query and a positive weightGrams are required"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"message":     "no nutrition data found for this query",
			"query":       req.Query,
			"weightGrams": req.WeightGrams,
			"hint":        "enter the values manually",
		})
	case errors.Is(err, domain.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"message":     "nutrition service is temporarily unavailable",
			"query":       req.Query,
			"weightGrams": req.WeightGrams,
			"hint":        "check the API key configuration or enter the values manually",
		})
	default:
		h.logger.Error().Err(err).Str("query", req.Query).Msg("nutrition lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error during nutrition lookup"})
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
