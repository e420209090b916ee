package handlers

import (
	"log/slog"
	"net/http"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
	portssvc "github.com/finpulse/finpulse_backend/internal/core/ports/services"
	"github.com/finpulse/finpulse_backend/internal/dto"
	"github.com/finpulse/finpulse_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the hydrated session snapshot.
type SessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService portssvc.SessionSvcFacade) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// registerSessionRoutes sets up the session routes.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := NewSessionHandler(sessionService)
	rg.GET("/session", h.GetSession)
}

// GetSession godoc
// @Summary Get session snapshot
// @Description Returns the user's session state, transactions, settings, and tiers. Hydrates from the store when the session is not Ready yet.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	snap, exists := h.sessionService.Snapshot(ctx, userID)
	if !exists || snap.State != domain.SessionReady {
		hydrated, err := h.sessionService.Hydrate(ctx, userID)
		if err != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Session hydration failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load session"})
			return
		}
		snap = hydrated
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}
