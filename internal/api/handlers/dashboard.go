package handlers

import (
	"net/http"

	"github.com/adrianstier/rse-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the overview dashboard
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats handles GET /dashboard/stats
// @Summary Dashboard statistics
// @Description Get aggregate counts across scenarios, action items and timeline events, optionally scoped to one project
// @Tags dashboard
// @Accept json
// @Produce json
// @Param project query string false "Scope to project" Enums(mote, fundemar)
// @Success 200 {object} service.DashboardStats "Successfully computed statistics"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context(), c.Query("project"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
