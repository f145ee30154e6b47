package dashboard

import (
	"context"
	"time"

	"dashboard-srv/internal/model"
)

// UseCase is the session registry. Sessions are created lazily on first
// access, seeded with the default dashboard data, and evicted after the
// configured idle timeout.
type UseCase interface {
	// Session returns the caller's session, creating it if absent.
	Session(ctx context.Context, sc model.Scope) (*Session, error)

	// ResetData restores the session's agenda and chart periods to
	// their seeds. Alerts, notes and modals are left alone.
	ResetData(ctx context.Context, sc model.Scope) error

	// Drop discards a user's session so the next access starts fresh.
	Drop(ctx context.Context, userID string)

	// EvictIdle removes sessions untouched since the idle cutoff and
	// returns how many were dropped.
	EvictIdle(ctx context.Context, now time.Time) int

	// ForEachSession calls fn for every active session. Iteration does
	// not refresh idle timers.
	ForEachSession(fn func(*Session))

	Stats() Stats
}
