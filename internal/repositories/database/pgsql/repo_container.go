package pgsql

import (
	portsrepo "github.com/finpulse/finpulse_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Transaction:     newPgxTransactionRepository(dbPool),
		RevenueSettings: newPgxRevenueSettingsRepository(dbPool),
		PricingTier:     newPgxPricingTierRepository(dbPool),
		User:            newPgxUserRepository(dbPool),
	}
}
