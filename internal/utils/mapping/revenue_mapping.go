package mapping

import (
	"github.com/finpulse/finpulse_backend/internal/core/domain"
	"github.com/finpulse/finpulse_backend/internal/models"
)

// ToModelRevenueSettings converts domain RevenueSettings to the model form.
func ToModelRevenueSettings(d domain.RevenueSettings) models.RevenueSettings {
	return models.RevenueSettings{
		UserID:      d.UserID,
		Baseline:    d.Baseline,
		Target:      d.Target,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRevenueSettings converts model RevenueSettings to the domain form.
func ToDomainRevenueSettings(m models.RevenueSettings) domain.RevenueSettings {
	return domain.RevenueSettings{
		UserID:      m.UserID,
		Baseline:    m.Baseline,
		Target:      m.Target,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPricingTier converts a domain PricingTier to the model form.
func ToModelPricingTier(d domain.PricingTier) models.PricingTier {
	return models.PricingTier{
		TierID: d.TierID,
		UserID: d.UserID,
		Price:  d.Price,
	}
}

// ToDomainPricingTier converts a model PricingTier to the domain form.
func ToDomainPricingTier(m models.PricingTier) domain.PricingTier {
	return domain.PricingTier{
		TierID: m.TierID,
		UserID: m.UserID,
		Price:  m.Price,
	}
}

// ToDomainPricingTierSlice converts a slice of model PricingTiers to domain PricingTiers.
func ToDomainPricingTierSlice(ms []models.PricingTier) []domain.PricingTier {
	ds := make([]domain.PricingTier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPricingTier(m)
	}
	return ds
}
