package dto

import "github.com/finpulse/finpulse_backend/internal/core/domain"

// SessionResponse is the hydrated snapshot returned to the presentation layer.
type SessionResponse struct {
	State        string                  `json:"state"`
	Transactions []TransactionResponse   `json:"transactions"`
	Settings     RevenueSettingsResponse `json:"settings"`
	Tiers        []PricingTierResponse   `json:"tiers"`
}

// ToSessionResponse converts a domain snapshot to its response DTO.
func ToSessionResponse(snap domain.SessionSnapshot) SessionResponse {
	return SessionResponse{
		State:        string(snap.State),
		Transactions: ToListTransactionResponse(snap.Transactions),
		Settings:     ToRevenueSettingsResponse(&snap.Settings),
		Tiers:        ToListPricingTierResponse(snap.Tiers),
	}
}
