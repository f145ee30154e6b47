package usecase

import (
	"errors"
	"sync"

	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
)

var (
	errLoggerRequired    = errors.New("alert: logger is required")
	errPublisherRequired = errors.New("alert: event publisher is required")
	errInvalidMax        = errors.New("alert: MaxAlerts must be positive")
)

type store struct {
	l      log.Logger
	cfg    alert.Config
	pub    event.Publisher
	userID string

	mu     sync.Mutex
	alerts []alert.Alert
	seed   []alert.Alert
	nextID int64
}

// New creates an alert store seeded with the given alerts. The seed is
// truncated to cfg.MaxAlerts if it is larger.
func New(l log.Logger, cfg alert.Config, seed []alert.Alert, pub event.Publisher, userID string) (alert.UseCase, error) {
	if l == nil {
		return nil, errLoggerRequired
	}
	if pub == nil {
		return nil, errPublisherRequired
	}
	if cfg.MaxAlerts < 1 {
		return nil, errInvalidMax
	}
	if len(seed) > cfg.MaxAlerts {
		seed = seed[:cfg.MaxAlerts]
	}

	var nextID int64
	for _, a := range seed {
		if a.ID > nextID {
			nextID = a.ID
		}
	}

	s := &store{
		l:      l,
		cfg:    cfg,
		pub:    pub,
		userID: userID,
		seed:   append([]alert.Alert(nil), seed...),
		nextID: nextID,
	}
	s.alerts = append([]alert.Alert(nil), seed...)
	return s, nil
}
