package mapping

import (
	"github.com/finpulse/finpulse_backend/internal/core/domain"
	"github.com/finpulse/finpulse_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		UserID:         d.UserID,
		Amount:         d.Amount,
		Kind:           string(d.Kind),
		Category:       string(d.Category),
		Description:    d.Description,
		OccurredAt:     d.OccurredAt,
		AccountContext: string(d.AccountContext),
		IsRecurring:    d.IsRecurring,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		Kind:           domain.TransactionKind(m.Kind),
		Category:       domain.Category(m.Category),
		Description:    m.Description,
		OccurredAt:     m.OccurredAt,
		AccountContext: domain.AccountContext(m.AccountContext),
		IsRecurring:    m.IsRecurring,
		Status:         domain.TransactionStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
