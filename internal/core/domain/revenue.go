package domain

import "github.com/shopspring/decimal"

// RevenueSettings holds the per-user recurring revenue figures that are not
// represented by individual transactions.
type RevenueSettings struct {
	UserID   string          `json:"userID"`   // Primary Key, one row per user
	Baseline decimal.Decimal `json:"baseline"` // Recurring revenue tracked outside transactions
	Target   decimal.Decimal `json:"target"`   // Recurring-revenue goal
	AuditFields
}

// DefaultRevenueSettings returns zero-valued settings for a user that has
// none stored remotely.
func DefaultRevenueSettings(userID string) RevenueSettings {
	return RevenueSettings{
		UserID:   userID,
		Baseline: decimal.Zero,
		Target:   decimal.Zero,
	}
}

// PricingTier is a hypothetical subscription price point used to project how
// many customers are needed to close the revenue gap.
type PricingTier struct {
	TierID string          `json:"tierID"` // Primary Key (UUID)
	UserID string          `json:"userID"` // FK -> User.userID (Not Null)
	Price  decimal.Decimal `json:"price"`
}
