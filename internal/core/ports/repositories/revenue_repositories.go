package repositories

import (
	"context"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
)

// RevenueSettingsRepository defines persistence for the per-user revenue settings row.
type RevenueSettingsRepository interface {
	// GetSettings returns the user's settings or apperrors.ErrNotFound when absent.
	GetSettings(ctx context.Context, userID string) (*domain.RevenueSettings, error)
	// UpsertSettings creates or replaces the settings row keyed by user id.
	UpsertSettings(ctx context.Context, settings domain.RevenueSettings) error
}

// PricingTierRepository defines persistence for a user's pricing tier set.
type PricingTierRepository interface {
	// ListTiers returns the user's tiers; empty slice when none exist.
	ListTiers(ctx context.Context, userID string) ([]domain.PricingTier, error)
	// ReplaceTiers deletes the user's existing tier set and inserts the given
	// one. The remote set afterwards mirrors exactly the provided set.
	ReplaceTiers(ctx context.Context, userID string, tiers []domain.PricingTier) error
}
