package services

import (
	"context"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
	portssvc "github.com/finpulse/finpulse_backend/internal/core/ports/services"
	"github.com/finpulse/finpulse_backend/internal/utils/finmetrics"
)

// metricsService implements MetricsSvcFacade. It holds no state of its own;
// everything is derived from the session snapshot on each call, so the
// dashboard always reflects the latest reconciled data.
type metricsService struct {
	BaseService
	session portssvc.SessionSvcFacade
}

// NewMetricsService creates the dashboard metrics service.
func NewMetricsService(session portssvc.SessionSvcFacade) *metricsService {
	return &metricsService{session: session}
}

// Dashboard computes the revenue totals and the goal projection for the user.
// A missing or stale session is hydrated first. Progress toward the target is
// measured against total revenue, baseline included.
func (s *metricsService) Dashboard(ctx context.Context, userID string) (domain.Totals, domain.Projection, error) {
	snap, ok := s.session.Snapshot(ctx, userID)
	if !ok || snap.State != domain.SessionReady {
		hydrated, err := s.session.Hydrate(ctx, userID)
		if err != nil {
			return domain.Totals{}, domain.Projection{}, err
		}
		snap = hydrated
	}

	totals := finmetrics.ComputeTotals(snap.Transactions, snap.Settings.Baseline)
	projection := finmetrics.ComputeProjection(totals.TotalRevenue, snap.Settings.Target, snap.Tiers)
	return totals, projection, nil
}
