package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/service"
)

// WheelOfLifeHandler handles life-area detail requests
type WheelOfLifeHandler struct {
	wheelService service.WheelOfLifeService
}

// NewWheelOfLifeHandler creates a new wheel-of-life handler
func NewWheelOfLifeHandler(wheelService service.WheelOfLifeService) *WheelOfLifeHandler {
	return &WheelOfLifeHandler{wheelService: wheelService}
}

// GetArea handles GET /api/wheel-of-life/area/:slug
func (h *WheelOfLifeHandler) GetArea(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	slug := c.Param("slug")

	detail, err := h.wheelService.GetArea(c.Request.Context(), userID, slug)
	if err != nil {
		writeError(c, err, "life area", slug)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateArea handles PUT /api/wheel-of-life/area/:slug
func (h *WheelOfLifeHandler) UpdateArea(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	slug := c.Param("slug")

	var req models.UpdateLifeAreaRequest
	if !bindJSON(c, &req) {
		return
	}

	detail, err := h.wheelService.UpdateArea(c.Request.Context(), userID, slug, &req)
	if err != nil {
		writeError(c, err, "life area", slug)
		return
	}

	c.JSON(http.StatusOK, detail)
}
