package services

import (
	"context"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
)

// MetricsSvcFacade computes derived dashboard metrics from the hydrated
// session snapshot. Stateless; results are re-derivable from the same inputs.
type MetricsSvcFacade interface {
	Dashboard(ctx context.Context, userID string) (domain.Totals, domain.Projection, error)
}
