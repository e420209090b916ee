package dto

import (
	"time"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a new transaction.
// Status is not accepted: new entries are always created as completed.
type CreateTransactionRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Kind           string          `json:"kind" binding:"required,oneof=income expense"`
	Category       string          `json:"category" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	OccurredAt     string          `json:"occurredAt" binding:"required"` // ISO date (2006-01-02) or RFC3339
	AccountContext string          `json:"accountContext" binding:"required,oneof=personal business"`
	IsRecurring    bool            `json:"isRecurring"`
}

// UpdateTransactionRequest defines a partial update. Pointers distinguish
// "not provided" from zero values; TransactionID itself is immutable.
type UpdateTransactionRequest struct {
	Amount         *decimal.Decimal `json:"amount"`
	Kind           *string          `json:"kind" binding:"omitempty,oneof=income expense"`
	Category       *string          `json:"category"`
	Description    *string          `json:"description"`
	OccurredAt     *string          `json:"occurredAt"`
	AccountContext *string          `json:"accountContext" binding:"omitempty,oneof=personal business"`
	IsRecurring    *bool            `json:"isRecurring"`
	Status         *string          `json:"status" binding:"omitempty,oneof=completed pending"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID  string          `json:"transactionID"`
	Amount         decimal.Decimal `json:"amount"`
	Kind           string          `json:"kind"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	OccurredAt     string          `json:"occurredAt"`
	AccountContext string          `json:"accountContext"`
	IsRecurring    bool            `json:"isRecurring"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		Amount:         txn.Amount,
		Kind:           string(txn.Kind),
		Category:       string(txn.Category),
		Description:    txn.Description,
		OccurredAt:     txn.OccurredAt.Format("2006-01-02"),
		AccountContext: string(txn.AccountContext),
		IsRecurring:    txn.IsRecurring,
		Status:         string(txn.Status),
		CreatedAt:      txn.CreatedAt,
		LastUpdatedAt:  txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines optional filters for listing transactions.
type ListTransactionsParams struct {
	AccountContext string `form:"accountContext" binding:"omitempty,oneof=personal business"`
	Kind           string `form:"kind" binding:"omitempty,oneof=income expense"`
}
