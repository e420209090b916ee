package services

import (
	portsrepo "github.com/finpulse/finpulse_backend/internal/core/ports/repositories"
	portssvc "github.com/finpulse/finpulse_backend/internal/core/ports/services"
	"github.com/finpulse/finpulse_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.User)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	// The session controller owns the in-memory snapshots; metrics derives
	// from them, so it depends on the session service rather than the repos.
	container.Session = NewSessionService(repos.Transaction, repos.RevenueSettings, repos.PricingTier)
	container.Metrics = NewMetricsService(container.Session)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.UserSvcFacade    = (*userService)(nil)
	_ portssvc.SessionSvcFacade = (*sessionService)(nil)
	_ portssvc.MetricsSvcFacade = (*metricsService)(nil)
)
