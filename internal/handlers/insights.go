package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/service"
)

// InsightsHandler handles nudges and personality requests
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetNudges handles GET /api/insights/nudges
func (h *InsightsHandler) GetNudges(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	nudges, err := h.insightsService.GetNudges(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "nudges", "")
		return
	}

	c.JSON(http.StatusOK, nudges)
}

// GetPersonality handles GET /api/personality
func (h *InsightsHandler) GetPersonality(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.insightsService.GetPersonality(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "personality profile", userID)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RefreshPersonality handles POST /api/personality/refresh
func (h *InsightsHandler) RefreshPersonality(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.insightsService.RefreshPersonality(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "personality profile", userID)
		return
	}

	c.JSON(http.StatusOK, profile)
}
