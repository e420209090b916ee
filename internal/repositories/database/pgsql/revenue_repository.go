package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finpulse/finpulse_backend/internal/apperrors"
	"github.com/finpulse/finpulse_backend/internal/core/domain"
	portsrepo "github.com/finpulse/finpulse_backend/internal/core/ports/repositories"
	"github.com/finpulse/finpulse_backend/internal/models"
	"github.com/finpulse/finpulse_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRevenueSettingsRepository struct {
	BaseRepository
}

// newPgxRevenueSettingsRepository creates a new repository for the per-user
// revenue settings row.
func newPgxRevenueSettingsRepository(pool *pgxpool.Pool) portsrepo.RevenueSettingsRepository {
	return &PgxRevenueSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RevenueSettingsRepository = (*PgxRevenueSettingsRepository)(nil)

// GetSettings retrieves the user's revenue settings row.
func (r *PgxRevenueSettingsRepository) GetSettings(ctx context.Context, userID string) (*domain.RevenueSettings, error) {
	query := `
		SELECT user_id, baseline, target, created_at, created_by, last_updated_at, last_updated_by
		FROM revenue_settings
		WHERE user_id = $1;
	`
	var modelSettings models.RevenueSettings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&modelSettings.UserID,
		&modelSettings.Baseline,
		&modelSettings.Target,
		&modelSettings.CreatedAt,
		&modelSettings.CreatedBy,
		&modelSettings.LastUpdatedAt,
		&modelSettings.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get revenue settings for user %s: %w", userID, err)
	}

	domainSettings := mapping.ToDomainRevenueSettings(modelSettings)
	return &domainSettings, nil
}

// UpsertSettings creates or replaces the settings row keyed by user id.
func (r *PgxRevenueSettingsRepository) UpsertSettings(ctx context.Context, settings domain.RevenueSettings) error {
	modelSettings := mapping.ToModelRevenueSettings(settings)

	query := `
		INSERT INTO revenue_settings (user_id, baseline, target, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			baseline = EXCLUDED.baseline,
			target = EXCLUDED.target,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelSettings.UserID,
		modelSettings.Baseline,
		modelSettings.Target,
		modelSettings.CreatedAt,
		modelSettings.CreatedBy,
		modelSettings.LastUpdatedAt,
		modelSettings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert revenue settings for user %s: %w", modelSettings.UserID, err)
	}
	return nil
}

type PgxPricingTierRepository struct {
	BaseRepository
}

// newPgxPricingTierRepository creates a new repository for pricing tiers.
func newPgxPricingTierRepository(pool *pgxpool.Pool) portsrepo.PricingTierRepository {
	return &PgxPricingTierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PricingTierRepository = (*PgxPricingTierRepository)(nil)

// ListTiers retrieves the user's pricing tiers.
func (r *PgxPricingTierRepository) ListTiers(ctx context.Context, userID string) ([]domain.PricingTier, error) {
	query := `
		SELECT tier_id, user_id, price
		FROM pricing_tiers
		WHERE user_id = $1
		ORDER BY price DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing tiers for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTiers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PricingTier, error) {
		var tier models.PricingTier
		err := row.Scan(&tier.TierID, &tier.UserID, &tier.Price)
		return tier, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.PricingTier{}, nil
		}
		return nil, fmt.Errorf("failed to scan pricing tiers: %w", err)
	}

	return mapping.ToDomainPricingTierSlice(modelTiers), nil
}

// ReplaceTiers deletes the user's existing tier set and inserts the given one.
// The delete and the inserts run as separate statements, so a reader between
// them can observe an empty set. The snapshot layer papers over that window;
// the remote set always converges to the provided one.
func (r *PgxPricingTierRepository) ReplaceTiers(ctx context.Context, userID string, tiers []domain.PricingTier) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM pricing_tiers WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete pricing tiers for user %s: %w", userID, err)
	}

	insertQuery := `INSERT INTO pricing_tiers (tier_id, user_id, price) VALUES ($1, $2, $3);`
	for _, tier := range tiers {
		modelTier := mapping.ToModelPricingTier(tier)
		if _, err := r.Pool.Exec(ctx, insertQuery, modelTier.TierID, modelTier.UserID, modelTier.Price); err != nil {
			return fmt.Errorf("failed to insert pricing tier %s: %w", modelTier.TierID, err)
		}
	}
	return nil
}
