package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	UserID         string          `db:"user_id"`
	Amount         decimal.Decimal `db:"amount"`
	Kind           string          `db:"kind"`
	Category       string          `db:"category"`
	Description    string          `db:"description"`
	OccurredAt     time.Time       `db:"occurred_at"`
	AccountContext string          `db:"account_context"`
	IsRecurring    bool            `db:"is_recurring"`
	Status         string          `db:"status"`
	AuditFields
}
