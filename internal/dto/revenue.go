package dto

import (
	"github.com/finpulse/finpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest replaces the user's revenue settings. Both figures are
// always written; omitting one resets it to zero, matching upsert semantics.
type UpdateSettingsRequest struct {
	Baseline decimal.Decimal `json:"baseline"`
	Target   decimal.Decimal `json:"target"`
}

// RevenueSettingsResponse defines the data returned for revenue settings.
type RevenueSettingsResponse struct {
	Baseline decimal.Decimal `json:"baseline"`
	Target   decimal.Decimal `json:"target"`
}

// ToRevenueSettingsResponse converts domain settings to the response DTO.
func ToRevenueSettingsResponse(s *domain.RevenueSettings) RevenueSettingsResponse {
	return RevenueSettingsResponse{
		Baseline: s.Baseline,
		Target:   s.Target,
	}
}

// TierInput is one tier in a sync request. Client-side ids are not accepted;
// the server assigns UUIDs on insert.
type TierInput struct {
	Price decimal.Decimal `json:"price"`
}

// SyncTiersRequest replaces the user's full pricing tier set.
type SyncTiersRequest struct {
	Tiers []TierInput `json:"tiers" binding:"required"`
}

// PricingTierResponse defines the data returned for a pricing tier.
type PricingTierResponse struct {
	TierID string          `json:"tierID"`
	Price  decimal.Decimal `json:"price"`
}

// ToPricingTierResponse converts a domain tier to its response DTO.
func ToPricingTierResponse(t domain.PricingTier) PricingTierResponse {
	return PricingTierResponse{
		TierID: t.TierID,
		Price:  t.Price,
	}
}

// ToListPricingTierResponse converts a slice of domain tiers.
func ToListPricingTierResponse(tiers []domain.PricingTier) []PricingTierResponse {
	res := make([]PricingTierResponse, len(tiers))
	for i, t := range tiers {
		res[i] = ToPricingTierResponse(t)
	}
	return res
}
