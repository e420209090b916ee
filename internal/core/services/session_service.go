package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/finpulse/finpulse_backend/internal/apperrors"
	"github.com/finpulse/finpulse_backend/internal/core/domain"
	portsrepo "github.com/finpulse/finpulse_backend/internal/core/ports/repositories"
	"github.com/finpulse/finpulse_backend/internal/dto"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// userSession is the in-memory state held for one signed-in user. The remote
// store remains the copy of record; this cache only changes after the
// corresponding remote write succeeded.
type userSession struct {
	state domain.SessionState
	// generation identifies the hydration currently allowed to commit. Values
	// come from the service-wide counter, so a session recreated after a
	// sign-out can never repeat a generation an in-flight hydration captured.
	generation   uint64
	transactions []domain.Transaction
	settings     domain.RevenueSettings
	tiers        []domain.PricingTier
}

// sessionService implements SessionSvcFacade. It keys sessions by user id and
// applies the same reconciliation contract to every mutation: validate first,
// write remote, and mirror into the snapshot only on success.
type sessionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepository
	settingsRepo portsrepo.RevenueSettingsRepository
	tierRepo     portsrepo.PricingTierRepository

	mu         sync.RWMutex
	sessions   map[string]*userSession
	generation uint64
}

// NewSessionService creates the session controller.
func NewSessionService(
	txnRepo portsrepo.TransactionRepository,
	settingsRepo portsrepo.RevenueSettingsRepository,
	tierRepo portsrepo.PricingTierRepository,
) *sessionService {
	return &sessionService{
		txnRepo:      txnRepo,
		settingsRepo: settingsRepo,
		tierRepo:     tierRepo,
		sessions:     make(map[string]*userSession),
	}
}

// Hydrate loads the user's transactions, settings, and tiers concurrently and
// moves the session to Ready. Each fetch is best effort: a failed fetch is
// logged and its slot defaulted, so a flaky store still yields a usable
// session. A hydration that was superseded by a newer sign-in or a sign-out
// discards its results instead of overwriting fresher state.
func (s *sessionService) Hydrate(ctx context.Context, userID string) (domain.SessionSnapshot, error) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &userSession{state: domain.SessionUnauthenticated}
		s.sessions[userID] = sess
	}
	// A Ready session re-hydrates too; a refresh must observe remote writes
	// made from other devices. Re-entering Hydrating requires passing through
	// the signed-out state first.
	if sess.state == domain.SessionReady {
		sess.state = domain.NextSessionState(sess.state, domain.EventSignedOut)
	}
	sess.state = domain.NextSessionState(sess.state, domain.EventSignedIn)
	s.generation++
	gen := s.generation
	sess.generation = gen
	s.mu.Unlock()

	var (
		transactions []domain.Transaction
		settings     domain.RevenueSettings
		tiers        []domain.PricingTier
	)

	var g errgroup.Group
	g.Go(func() error {
		fetched, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
		if err != nil {
			s.LogWarn(ctx, "Hydration: transaction fetch failed, defaulting to empty",
				slog.String("user_id", userID), slog.String("error", err.Error()))
			transactions = []domain.Transaction{}
			return nil
		}
		transactions = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.settingsRepo.GetSettings(ctx, userID)
		if err != nil || fetched == nil {
			if err != nil && !isNotFound(err) {
				s.LogWarn(ctx, "Hydration: settings fetch failed, defaulting",
					slog.String("user_id", userID), slog.String("error", err.Error()))
			}
			settings = domain.DefaultRevenueSettings(userID)
			return nil
		}
		settings = *fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.tierRepo.ListTiers(ctx, userID)
		if err != nil {
			s.LogWarn(ctx, "Hydration: tier fetch failed, defaulting to empty",
				slog.String("user_id", userID), slog.String("error", err.Error()))
			tiers = []domain.PricingTier{}
			return nil
		}
		tiers = fetched
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok = s.sessions[userID]
	if !ok {
		// Signed out while hydrating; drop the results.
		return domain.SessionSnapshot{State: domain.SessionUnauthenticated}, nil
	}
	if sess.generation != gen {
		// A newer hydration superseded this one.
		return snapshotOf(sess), nil
	}

	sess.transactions = transactions
	sess.settings = settings
	sess.tiers = tiers
	sess.state = domain.NextSessionState(sess.state, domain.EventHydrationSettled)

	s.LogInfo(ctx, "Session hydrated",
		slog.String("user_id", userID),
		slog.Int("transactions", len(transactions)),
		slog.Int("tiers", len(tiers)))

	return snapshotOf(sess), nil
}

// Snapshot returns the user's current session state. The second return value
// is false when no session exists.
func (s *sessionService) Snapshot(ctx context.Context, userID string) (domain.SessionSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return domain.SessionSnapshot{State: domain.SessionUnauthenticated}, false
	}
	return snapshotOf(sess), true
}

// SignOut drops all in-memory state for the user. Nothing remote is touched.
func (s *sessionService) SignOut(ctx context.Context, userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
	s.LogInfo(ctx, "Session cleared", slog.String("user_id", userID))
}

// AddTransaction validates the request, writes the new transaction to the
// remote store, and prepends it to the snapshot only after the write
// succeeded.
func (s *sessionService) AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("description must not be empty: %w", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if !domain.IsValidCategory(domain.Category(req.Category)) {
		return nil, fmt.Errorf("unknown category %q: %w", req.Category, apperrors.ErrValidation)
	}
	occurredAt, err := parseOccurredAt(req.OccurredAt)
	if err != nil {
		return nil, fmt.Errorf("invalid occurredAt %q: %w", req.OccurredAt, apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		UserID:         userID,
		Amount:         req.Amount,
		Kind:           domain.TransactionKind(req.Kind),
		Category:       domain.Category(req.Category),
		Description:    strings.TrimSpace(req.Description),
		OccurredAt:     occurredAt,
		AccountContext: domain.AccountContext(req.AccountContext),
		IsRecurring:    req.IsRecurring,
		Status:         domain.StatusCompleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction, snapshot left untouched",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok {
		updated := make([]domain.Transaction, 0, len(sess.transactions)+1)
		updated = append(updated, txn)
		updated = append(updated, sess.transactions...)
		sess.transactions = updated
	}
	s.mu.Unlock()

	return &txn, nil
}

// UpdateTransaction merges the provided fields into the stored transaction,
// persists the result, and swaps it into the snapshot on success. Absent
// fields keep their stored values.
func (s *sessionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.findTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		}
		merged.Amount = *req.Amount
	}
	if req.Kind != nil {
		merged.Kind = domain.TransactionKind(*req.Kind)
	}
	if req.Category != nil {
		if !domain.IsValidCategory(domain.Category(*req.Category)) {
			return nil, fmt.Errorf("unknown category %q: %w", *req.Category, apperrors.ErrValidation)
		}
		merged.Category = domain.Category(*req.Category)
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, fmt.Errorf("description must not be empty: %w", apperrors.ErrValidation)
		}
		merged.Description = strings.TrimSpace(*req.Description)
	}
	if req.OccurredAt != nil {
		occurredAt, err := parseOccurredAt(*req.OccurredAt)
		if err != nil {
			return nil, fmt.Errorf("invalid occurredAt %q: %w", *req.OccurredAt, apperrors.ErrValidation)
		}
		merged.OccurredAt = occurredAt
	}
	if req.AccountContext != nil {
		merged.AccountContext = domain.AccountContext(*req.AccountContext)
	}
	if req.IsRecurring != nil {
		merged.IsRecurring = *req.IsRecurring
	}
	if req.Status != nil {
		merged.Status = domain.TransactionStatus(*req.Status)
	}
	merged.LastUpdatedAt = time.Now()
	merged.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, merged); err != nil {
		s.LogError(ctx, err, "Failed to update transaction, snapshot left untouched",
			slog.String("user_id", userID), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok {
		updated := make([]domain.Transaction, len(sess.transactions))
		copy(updated, sess.transactions)
		for i := range updated {
			if updated[i].TransactionID == transactionID {
				updated[i] = merged
				break
			}
		}
		sess.transactions = updated
	}
	s.mu.Unlock()

	return &merged, nil
}

// DeleteTransaction removes the transaction remotely and drops it from the
// snapshot only after the delete succeeded.
func (s *sessionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction, snapshot left untouched",
			slog.String("user_id", userID), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok {
		updated := make([]domain.Transaction, 0, len(sess.transactions))
		for _, txn := range sess.transactions {
			if txn.TransactionID != transactionID {
				updated = append(updated, txn)
			}
		}
		sess.transactions = updated
	}
	s.mu.Unlock()

	return nil
}

// UpdateSettings upserts the user's revenue settings row and mirrors it into
// the snapshot on success.
func (s *sessionService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.RevenueSettings, error) {
	if req.Baseline.IsNegative() {
		return nil, fmt.Errorf("baseline must not be negative: %w", apperrors.ErrValidation)
	}
	if req.Target.IsNegative() {
		return nil, fmt.Errorf("target must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	settings := domain.RevenueSettings{
		UserID:   userID,
		Baseline: req.Baseline,
		Target:   req.Target,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.settingsRepo.UpsertSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to upsert settings, snapshot left untouched",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to upsert settings: %w", err)
	}

	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok {
		sess.settings = settings
	}
	s.mu.Unlock()

	return &settings, nil
}

// SyncTiers replaces the user's full pricing tier set remotely and mirrors
// the exact same set into the snapshot on success. Tier ids are assigned
// server side.
func (s *sessionService) SyncTiers(ctx context.Context, userID string, req dto.SyncTiersRequest) ([]domain.PricingTier, error) {
	tiers := make([]domain.PricingTier, 0, len(req.Tiers))
	for _, input := range req.Tiers {
		if input.Price.IsNegative() {
			return nil, fmt.Errorf("tier price must not be negative: %w", apperrors.ErrValidation)
		}
		tiers = append(tiers, domain.PricingTier{
			TierID: uuid.NewString(),
			UserID: userID,
			Price:  input.Price,
		})
	}

	if err := s.tierRepo.ReplaceTiers(ctx, userID, tiers); err != nil {
		s.LogError(ctx, err, "Failed to replace tiers, snapshot left untouched",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to replace tiers: %w", err)
	}

	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok {
		sess.tiers = tiers
	}
	s.mu.Unlock()

	return tiers, nil
}

// findTransaction resolves the target of an update, preferring the snapshot
// over a remote read, and enforces ownership.
func (s *sessionService) findTransaction(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	if sess, ok := s.sessions[userID]; ok {
		for i := range sess.transactions {
			if sess.transactions[i].TransactionID == transactionID {
				txn := sess.transactions[i]
				s.mu.RUnlock()
				return &txn, nil
			}
		}
	}
	s.mu.RUnlock()

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return txn, nil
}

// snapshotOf copies the session into a snapshot value. Slices are shared but
// never mutated in place; every mutation swaps in a fresh slice.
func snapshotOf(sess *userSession) domain.SessionSnapshot {
	return domain.SessionSnapshot{
		State:        sess.state,
		Transactions: sess.transactions,
		Settings:     sess.settings,
		Tiers:        sess.tiers,
	}
}

// parseOccurredAt accepts a plain calendar date or a full RFC3339 timestamp.
func parseOccurredAt(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
