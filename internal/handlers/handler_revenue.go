package handlers

import (
	"net/http"

	portssvc "github.com/finpulse/finpulse_backend/internal/core/ports/services"
	"github.com/finpulse/finpulse_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// RevenueHandler handles revenue settings and pricing tier requests.
type RevenueHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// NewRevenueHandler creates a new RevenueHandler.
func NewRevenueHandler(sessionService portssvc.SessionSvcFacade) *RevenueHandler {
	return &RevenueHandler{sessionService: sessionService}
}

// registerRevenueRoutes sets up settings and tier routes.
func registerRevenueRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := NewRevenueHandler(sessionService)
	rg.PUT("/settings", h.UpdateSettings)
	rg.PUT("/tiers", h.SyncTiers)
}

// UpdateSettings godoc
// @Summary Update revenue settings
// @Description Replaces the user's baseline and target recurring-revenue figures.
// @Tags revenue
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Baseline and target"
// @Success 200 {object} dto.RevenueSettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /settings [put]
func (h *RevenueHandler) UpdateSettings(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	settings, err := h.sessionService.UpdateSettings(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueSettingsResponse(settings))
}

// SyncTiers godoc
// @Summary Replace pricing tiers
// @Description Replaces the user's full pricing tier set; the stored set afterwards mirrors exactly the submitted one.
// @Tags revenue
// @Accept json
// @Produce json
// @Param tiers body dto.SyncTiersRequest true "Complete tier set"
// @Success 200 {array} dto.PricingTierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tiers [put]
func (h *RevenueHandler) SyncTiers(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.SyncTiersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tiers, err := h.sessionService.SyncTiers(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListPricingTierResponse(tiers))
}
