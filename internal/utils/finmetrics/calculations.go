// Package finmetrics holds the pure aggregation and goal-projection
// calculations used by the dashboard. Every function here is deterministic
// and side-effect free so results can be recomputed from the same snapshot
// at any time.
package finmetrics

import (
	"sort"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// ComputeTotals derives the summary figures from a transaction list and the
// baseline recurring revenue.
//
// Margin is NetProfit/TotalRevenue*100 rounded to one decimal place, defined
// as zero when TotalRevenue is not positive. A fresh account with no revenue
// is an expected state, not an error.
func ComputeTotals(transactions []domain.Transaction, baseline decimal.Decimal) domain.Totals {
	extraRevenue := decimal.Zero
	totalBurn := decimal.Zero
	for _, txn := range transactions {
		switch txn.Kind {
		case domain.KindIncome:
			extraRevenue = extraRevenue.Add(txn.Amount)
		case domain.KindExpense:
			totalBurn = totalBurn.Add(txn.Amount)
		}
	}

	totalRevenue := baseline.Add(extraRevenue)
	netProfit := totalRevenue.Sub(totalBurn)

	margin := decimal.Zero
	if totalRevenue.IsPositive() {
		margin = netProfit.Div(totalRevenue).Mul(hundred).Round(1)
	}

	return domain.Totals{
		ExtraRevenue:  extraRevenue,
		TotalRevenue:  totalRevenue,
		TotalBurn:     totalBurn,
		NetProfit:     netProfit,
		Margin:        margin,
		AnnualRunRate: totalRevenue.Mul(twelve),
	}
}

// ComputeProjection derives progress toward the recurring-revenue target and,
// per pricing tier, how many net-new customers at that price close the gap.
//
// Tiers priced at or below zero carry no valid projection and are excluded
// from the output. Output tiers are sorted by price descending; the ordering
// is a presentation contract, not incidental.
func ComputeProjection(current, target decimal.Decimal, tiers []domain.PricingTier) domain.Projection {
	progressPct := decimal.Zero
	gap := decimal.Zero
	if target.IsPositive() {
		progressPct = current.Div(target).Mul(hundred).Round(1)
		gap = decimal.Max(decimal.Zero, target.Sub(current))
	}

	projected := make([]domain.TierProjection, 0, len(tiers))
	for _, tier := range tiers {
		if !tier.Price.IsPositive() {
			continue
		}
		projected = append(projected, domain.TierProjection{
			TierID:          tier.TierID,
			Price:           tier.Price,
			CustomersNeeded: gap.Div(tier.Price).Ceil().IntPart(),
		})
	}
	sort.SliceStable(projected, func(i, j int) bool {
		return projected[i].Price.GreaterThan(projected[j].Price)
	})

	return domain.Projection{
		ProgressPct: progressPct,
		Gap:         gap,
		Tiers:       projected,
	}
}
