package dto

import "github.com/finpulse/finpulse_backend/internal/core/domain"

// DashboardResponse bundles the derived metrics computed from the session
// snapshot: aggregation totals and the goal projection.
type DashboardResponse struct {
	Totals     domain.Totals     `json:"totals"`
	Projection domain.Projection `json:"projection"`
}
