package handlers

import (
	"errors"
	"net/http"
	"time"

	"delivery_admin/internal/logger"
	"delivery_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService  services.OrderService
	reportService services.ReportService
}

func NewOrderHandler(orderService services.OrderService, reportService services.ReportService) *OrderHandler {
	return &OrderHandler{orderService: orderService, reportService: reportService}
}

// ListForDay returns one day's zone-scoped orders plus the charge
// totals over the filtered subset. Filters apply in memory after the
// fetch so the totals always agree with the rendered list.
func (h *OrderHandler) ListForDay(c *gin.Context) {
	zone := c.Query("zone")
	if zone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zone is required"})
		return
	}

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	orders, err := h.orderService.OrdersForDay(c.Request.Context(), zone, day)
	if err != nil {
		logger.Error("failed to load orders", "zone", zone, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	filtered := services.FilterOrders(orders, c.Query("status"), c.Query("partner"), c.Query("store"))
	c.JSON(http.StatusOK, gin.H{
		"orders": filtered,
		"totals": services.SumCharges(filtered),
	})
}

func (h *OrderHandler) Search(c *gin.Context) {
	orderID := c.Param("id")
	zone := c.Query("zone")
	if zone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zone is required"})
		return
	}

	order, err := h.orderService.SearchOrder(c.Request.Context(), orderID, zone)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No order found with this ID"})
			return
		}
		logger.Error("order search failed", "order_id", orderID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Items(c *gin.Context) {
	orderID := c.Param("id")

	items, err := h.orderService.OrderItems(c.Request.Context(), orderID)
	if err != nil {
		logger.Error("failed to load order items", "order_id", orderID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Cancel transitions the order to Cancelled. Clients re-fetch the list
// afterwards since the order may no longer pass an active filter.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), orderID); err != nil {
		logger.Error("failed to cancel order", "order_id", orderID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": orderID, "status": "Cancelled"})
}

// Charges sums delivered orders of a zone over an inclusive date range.
func (h *OrderHandler) Charges(c *gin.Context) {
	zone := c.Query("zone")
	if zone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zone is required"})
		return
	}
	start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.orderService.TotalsForRange(c.Request.Context(), zone, start, end)
	if err != nil {
		logger.Error("failed to load charge totals", "zone", zone, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// MonthlyTotals is the strict chart series: delivered orders of one
// zone, bucketed by day.
func (h *OrderHandler) MonthlyTotals(c *gin.Context) {
	zone := c.Query("zone")
	if zone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zone is required"})
		return
	}
	start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.orderService.MonthlyTotals(c.Request.Context(), zone, start, end)
	if err != nil {
		logger.Error("failed to load monthly totals", "zone", zone, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": totals})
}

// Export streams the day's filtered orders as an .xlsx attachment.
func (h *OrderHandler) Export(c *gin.Context) {
	zone := c.Query("zone")
	if zone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zone is required"})
		return
	}

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	data, filename, err := h.reportService.ExportDayOrders(
		c.Request.Context(), zone, day, c.Query("status"), c.Query("partner"), c.Query("store"))
	if err != nil {
		logger.Error("failed to export orders", "zone", zone, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export orders"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end must be YYYY-MM-DD")
	}
	// Inclusive range: push the end to the last instant of its day.
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}
