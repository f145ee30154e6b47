package usecase

import (
	"errors"
	"sync"
	"time"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
)

var (
	errLoggerRequired    = errors.New("dashboard: logger is required")
	errPublisherRequired = errors.New("dashboard: event publisher is required")
	errInvalidConfig     = errors.New("dashboard: store limits must be positive")
)

type entry struct {
	session  *dashboard.Session
	lastSeen time.Time
}

type registry struct {
	l   log.Logger
	cfg dashboard.Config
	pub event.Publisher

	mu       sync.Mutex
	sessions map[string]*entry
}

// New creates the session registry.
func New(l log.Logger, cfg dashboard.Config, pub event.Publisher) (dashboard.UseCase, error) {
	if l == nil {
		return nil, errLoggerRequired
	}
	if pub == nil {
		return nil, errPublisherRequired
	}
	if cfg.MaxAlerts < 1 || cfg.MaxNotes < 1 || cfg.MaxNoteLength < 1 || cfg.MaxSessions < 1 {
		return nil, errInvalidConfig
	}
	return &registry{
		l:        l,
		cfg:      cfg,
		pub:      pub,
		sessions: make(map[string]*entry),
	}, nil
}
