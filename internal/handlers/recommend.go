package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/renchinlab/cookware-api/internal/logger"
	"github.com/renchinlab/cookware-api/internal/rakuten"
	"github.com/renchinlab/cookware-api/internal/service"
	"go.uber.org/zap"
)

// RecommendHandler is the handler for cooking-tool recommendation requests.
type RecommendHandler struct {
	Service *service.RecommendationService
}

// NewRecommendHandler is the constructor function for initializing a new
// RecommendHandler.
func NewRecommendHandler(recommendService *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{Service: recommendService}
}

// RecommendRequest is the request body for POST /recommend_cooking_tools.
type RecommendRequest struct {
	RecipeText  string `json:"recipe_text"`
	RecipeTitle string `json:"recipe_title"`
}

// Recommend handles POST /recommend_cooking_tools.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.RecipeText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_text is required"})
		return
	}

	resp, err := h.Service.Recommend(c.Request.Context(), req.RecipeText, req.RecipeTitle)
	if err != nil {
		var unavailable rakuten.UnavailableError
		var apiErr rakuten.APIError
		switch {
		case errors.As(err, &unavailable):
			logger.Get().Error("product search unreachable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Product search is temporarily unavailable"})
		case errors.As(err, &apiErr):
			logger.Get().Error("product search failed",
				zap.Int("upstream_status", apiErr.Status),
				zap.String("upstream_body", apiErr.Body),
				zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Product search failed"})
		default:
			logger.Get().Error("failed to build recommendations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build recommendations"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
