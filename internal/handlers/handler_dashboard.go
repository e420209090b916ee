package handlers

import (
	"net/http"

	portssvc "github.com/finpulse/finpulse_backend/internal/core/ports/services"
	"github.com/finpulse/finpulse_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the derived metrics.
type DashboardHandler struct {
	metricsService portssvc.MetricsSvcFacade
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(metricsService portssvc.MetricsSvcFacade) *DashboardHandler {
	return &DashboardHandler{metricsService: metricsService}
}

// registerDashboardRoutes sets up the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, metricsService portssvc.MetricsSvcFacade) {
	h := NewDashboardHandler(metricsService)
	rg.GET("/dashboard", h.GetDashboard)
}

// GetDashboard godoc
// @Summary Dashboard metrics
// @Description Returns the aggregation totals and the goal projection computed from the live session snapshot.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	totals, projection, err := h.metricsService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Totals:     totals,
		Projection: projection,
	})
}
