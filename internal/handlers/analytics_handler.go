package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"umoabonds/internal/services"
)

// AnalyticsHandler exposes the in-memory search statistics.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalytics handles the search statistics.
// @Summary     Search analytics
// @Description Get search counts, top queries and recent searches since the last reset
// @Tags        analytics
// @Produce     json
// @Success     200 {object} services.AnalyticsSnapshot "Statistics"
// @Router      /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.Snapshot())
}

// ResetAnalytics handles clearing the search statistics.
// @Summary     Reset analytics
// @Description Clear all search statistics
// @Tags        analytics
// @Produce     json
// @Success     200 {object} map[string]string "Reset"
// @Router      /analytics/reset [post]
func (h *AnalyticsHandler) ResetAnalytics(c *gin.Context) {
	h.analyticsService.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "Analytics reset"})
}
