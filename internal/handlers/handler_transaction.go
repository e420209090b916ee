package handlers

import (
	"net/http"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
	portssvc "github.com/finpulse/finpulse_backend/internal/core/ports/services"
	"github.com/finpulse/finpulse_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction CRUD requests. All mutations go
// through the session service so the snapshot stays reconciled.
type TransactionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(sessionService portssvc.SessionSvcFacade) *TransactionHandler {
	return &TransactionHandler{sessionService: sessionService}
}

// RegisterTransactionRoutes sets up the transaction routes.
func RegisterTransactionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := NewTransactionHandler(sessionService)
	txns := rg.Group("/transactions")
	{
		txns.GET("", h.ListTransactions)
		txns.POST("", h.CreateTransaction)
		txns.PATCH("/:id", h.UpdateTransaction)
		txns.DELETE("/:id", h.DeleteTransaction)
	}
}

// ListTransactions godoc
// @Summary List transactions
// @Description Lists the user's transactions from the session snapshot, newest first. Supports filtering by account context and kind.
// @Tags transactions
// @Produce json
// @Param accountContext query string false "personal or business"
// @Param kind query string false "income or expense"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	snap, exists := h.sessionService.Snapshot(ctx, userID)
	if !exists || snap.State != domain.SessionReady {
		hydrated, err := h.sessionService.Hydrate(ctx, userID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		snap = hydrated
	}

	filtered := make([]domain.Transaction, 0, len(snap.Transactions))
	for _, txn := range snap.Transactions {
		if params.AccountContext != "" && string(txn.AccountContext) != params.AccountContext {
			continue
		}
		if params.Kind != "" && string(txn.Kind) != params.Kind {
			continue
		}
		filtered = append(filtered, txn)
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(filtered))
}

// CreateTransaction godoc
// @Summary Record a transaction
// @Description Validates and persists a new transaction, then mirrors it into the session snapshot.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction data"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.sessionService.AddTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update to a transaction; absent fields keep their stored values.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.sessionService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction remotely and drops it from the session snapshot.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.sessionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
