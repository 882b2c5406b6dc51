package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/service"
)

// RecapHandler handles recap cards and stored recaps
type RecapHandler struct {
	recapService service.RecapService
}

// NewRecapHandler creates a new recap handler
func NewRecapHandler(recapService service.RecapService) *RecapHandler {
	return &RecapHandler{recapService: recapService}
}

// GenerateCards handles GET /api/recaps/generate-cards?period=<week|month>
func (h *RecapHandler) GenerateCards(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	cards, err := h.recapService.GenerateCards(c.Request.Context(), userID, c.DefaultQuery("period", service.PeriodWeek))
	if err != nil {
		writeError(c, err, "recap", "")
		return
	}

	c.JSON(http.StatusOK, cards)
}

// Generate handles POST /api/recaps/generate
func (h *RecapHandler) Generate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.GenerateRecapRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.recapService.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err, "recap", "")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/recaps
func (h *RecapHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	recaps, err := h.recapService.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeError(c, err, "recap", "")
		return
	}

	c.JSON(http.StatusOK, recaps)
}

// Get handles GET /api/recaps/:id
func (h *RecapHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Param("id")

	recap, err := h.recapService.Get(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err, "recap", id)
		return
	}

	c.JSON(http.StatusOK, recap)
}
