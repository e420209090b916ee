package domain

import "github.com/shopspring/decimal"

// Totals is the summary computed over a user's transaction list plus their
// baseline recurring revenue.
type Totals struct {
	ExtraRevenue  decimal.Decimal `json:"extraRevenue"`  // Sum of income transaction amounts
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`  // Baseline + ExtraRevenue
	TotalBurn     decimal.Decimal `json:"totalBurn"`     // Sum of expense transaction amounts
	NetProfit     decimal.Decimal `json:"netProfit"`     // TotalRevenue - TotalBurn
	Margin        decimal.Decimal `json:"margin"`        // NetProfit/TotalRevenue*100, one decimal place; 0 when TotalRevenue <= 0
	AnnualRunRate decimal.Decimal `json:"annualRunRate"` // TotalRevenue * 12
}

// TierProjection is the per-tier result of the goal projection.
type TierProjection struct {
	TierID          string          `json:"tierID"`
	Price           decimal.Decimal `json:"price"`
	CustomersNeeded int64           `json:"customersNeeded"` // ceil(gap / price)
}

// Projection describes progress toward the recurring-revenue target and how
// each pricing tier could close the remaining gap.
type Projection struct {
	ProgressPct decimal.Decimal  `json:"progressPct"` // current/target*100, one decimal place; 0 when target <= 0
	Gap         decimal.Decimal  `json:"gap"`         // max(0, target - current)
	Tiers       []TierProjection `json:"tiers"`       // Sorted by price descending; tiers priced <= 0 excluded
}
