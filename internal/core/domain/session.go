package domain

// SessionState is the lifecycle state of a user's hydrated session.
type SessionState string

const (
	SessionUnauthenticated SessionState = "UNAUTHENTICATED"
	SessionHydrating       SessionState = "HYDRATING"
	SessionReady           SessionState = "READY"
)

// SessionEvent drives transitions between session states.
type SessionEvent string

const (
	EventSignedIn         SessionEvent = "SIGNED_IN"
	EventHydrationSettled SessionEvent = "HYDRATION_SETTLED"
	EventSignedOut        SessionEvent = "SIGNED_OUT"
)

// NextSessionState is the pure transition function for the session lifecycle.
// Only three transitions exist; any other (state, event) pair keeps the
// current state. Hydrating is re-entered only via a fresh SIGNED_IN.
func NextSessionState(state SessionState, event SessionEvent) SessionState {
	switch {
	case state == SessionUnauthenticated && event == EventSignedIn:
		return SessionHydrating
	case state == SessionHydrating && event == EventHydrationSettled:
		return SessionReady
	case (state == SessionReady || state == SessionHydrating) && event == EventSignedOut:
		return SessionUnauthenticated
	default:
		return state
	}
}

// SessionSnapshot is the in-memory mirror of a user's remote-backed state.
// The remote store is the durable copy of record; this snapshot is a cache
// that must eventually match it.
type SessionSnapshot struct {
	State        SessionState    `json:"state"`
	Transactions []Transaction   `json:"transactions"` // Newest first
	Settings     RevenueSettings `json:"settings"`
	Tiers        []PricingTier   `json:"tiers"`
}
