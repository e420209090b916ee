package models

import "github.com/shopspring/decimal"

// RevenueSettings mirrors a row of the revenue_settings table (PK user_id).
type RevenueSettings struct {
	UserID   string          `db:"user_id"`
	Baseline decimal.Decimal `db:"baseline"`
	Target   decimal.Decimal `db:"target"`
	AuditFields
}

// PricingTier mirrors a row of the pricing_tiers table.
type PricingTier struct {
	TierID string          `db:"tier_id"`
	UserID string          `db:"user_id"`
	Price  decimal.Decimal `db:"price"`
}
