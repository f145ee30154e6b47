package usecase

import (
	"sync"

	"dashboard-srv/internal/event"
	"dashboard-srv/internal/modal"
	"dashboard-srv/pkg/log"
)

type registry struct {
	l      log.Logger
	cfg    modal.Config
	pub    event.Publisher
	userID string
	guard  modal.ScrollGuard

	mu sync.Mutex
	// open preserves insertion order; at most one entry in exclusive mode.
	open []string
}

// New creates a modal registry for one session. The scroll guard may be
// nil only when cfg.ScrollLock is disabled.
func New(l log.Logger, cfg modal.Config, guard modal.ScrollGuard, pub event.Publisher, userID string) (modal.UseCase, error) {
	if l == nil {
		return nil, errLoggerRequired
	}
	if pub == nil {
		return nil, errPublisherRequired
	}
	if cfg.ScrollLock && guard == nil {
		return nil, errGuardRequired
	}
	return &registry{
		l:      l,
		cfg:    cfg,
		pub:    pub,
		userID: userID,
		guard:  guard,
	}, nil
}

// NewScrollGuard returns the default in-memory scroll guard.
func NewScrollGuard() modal.ScrollGuard {
	return &scrollGuard{}
}
