package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/service"
)

// CheckInHandler serves mood check-ins
type CheckInHandler struct {
	checkInService service.CheckInService
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(checkInService service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// ListCheckIns handles GET /api/check-ins
func (h *CheckInHandler) ListCheckIns(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	checkIns, err := h.checkInService.ListCheckIns(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeError(c, err, "check-in", "")
		return
	}

	c.JSON(http.StatusOK, checkIns)
}

// CreateCheckIn handles POST /api/check-ins
func (h *CheckInHandler) CreateCheckIn(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateCheckInRequest
	if !bindJSON(c, &req) {
		return
	}

	checkIn, err := h.checkInService.CreateCheckIn(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err, "check-in", "")
		return
	}

	c.JSON(http.StatusCreated, checkIn)
}
