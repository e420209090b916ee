package repositories

import (
	"context"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// SaveTransaction inserts a new transaction row.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// FindTransactionByID returns the transaction or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListTransactionsByUser returns the user's transactions ordered newest first.
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	// UpdateTransaction persists the full updated transaction row.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransaction removes the row; apperrors.ErrNotFound when nothing matched.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}
