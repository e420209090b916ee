package repositories

// RepositoryProvider bundles every repository implementation behind the port
// interfaces so services can be wired from a single value.
type RepositoryProvider struct {
	Transaction     TransactionRepository
	RevenueSettings RevenueSettingsRepository
	PricingTier     PricingTierRepository
	User            UserRepository
}
