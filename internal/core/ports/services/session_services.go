package services

import (
	"context"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
	"github.com/finpulse/finpulse_backend/internal/dto"
)

// SessionSvcFacade is the session/sync controller: it owns the in-memory
// per-user snapshot, hydrates it from the remote store on sign-in, and applies
// the reconciliation contract on every mutation. Local state only changes
// after the corresponding remote write succeeded.
type SessionSvcFacade interface {
	// Hydrate loads the user's transactions, settings, and tiers concurrently
	// and transitions the session to Ready. Individual fetch failures are
	// logged and defaulted; a partial hydration still reaches Ready.
	Hydrate(ctx context.Context, userID string) (domain.SessionSnapshot, error)

	// Snapshot returns the current snapshot. The second return value is false
	// when no session exists for the user (state Unauthenticated).
	Snapshot(ctx context.Context, userID string) (domain.SessionSnapshot, bool)

	// SignOut clears all in-memory state for the user unconditionally.
	SignOut(ctx context.Context, userID string)

	AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.RevenueSettings, error)
	SyncTiers(ctx context.Context, userID string, req dto.SyncTiersRequest) ([]domain.PricingTier, error)
}
