package handlers

import (
	"net/http"

	"delivery_admin/internal/logger"
	"delivery_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	analyticsService services.AnalyticsService
}

func NewDashboardHandler(analyticsService services.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analyticsService: analyticsService}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.analyticsService.DashboardStats(c.Request.Context())
	if err != nil {
		logger.Error("failed to load dashboard stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// MonthlyTotals is the dashboard chart series: all orders in the range
// regardless of zone or status.
func (h *DashboardHandler) MonthlyTotals(c *gin.Context) {
	start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.analyticsService.MonthlyOrderTotals(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("failed to load monthly totals", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": totals})
}
