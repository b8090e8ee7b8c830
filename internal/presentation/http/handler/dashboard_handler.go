package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/application/service"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/response"
)

// DashboardHandler serves the admin overview numbers.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the derived dashboard statistics. ?refresh=true bypasses
// the short-lived cache.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	force := c.Query("refresh") == "true"

	stats, err := h.dashboardService.Stats(c.Request.Context(), force)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard statistics", stats)
}
