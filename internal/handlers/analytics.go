package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/service"
)

// AnalyticsHandler serves correlation analytics
type AnalyticsHandler struct {
	correlationsService service.CorrelationsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(correlationsService service.CorrelationsService) *AnalyticsHandler {
	return &AnalyticsHandler{correlationsService: correlationsService}
}

// GetCorrelations handles GET /api/analytics/correlations?period=<days>&type=<section>
func (h *AnalyticsHandler) GetCorrelations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var period int
	if v := c.Query("period"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			invalidQuery(c, "period", "must be a number of days")
			return
		}
		period = p
	}
	section := c.DefaultQuery("type", analysis.SectionAll)

	resp, err := h.correlationsService.GetCorrelations(c.Request.Context(), userID, period, section)
	if err != nil {
		writeError(c, err, "correlations", "")
		return
	}

	c.JSON(http.StatusOK, resp)
}
