package usecase

import (
	"errors"
	"time"

	"dashboard-srv/internal/refresh"
	"dashboard-srv/pkg/log"
)

var (
	errLoggerRequired   = errors.New("refresh: logger is required")
	errNotifierRequired = errors.New("refresh: notifier is required")
	errInvalidInterval  = errors.New("refresh: interval must be positive")
)

type service struct {
	l        log.Logger
	interval time.Duration
	notify   refresh.Notifier

	stop chan struct{}
	done chan struct{}
}

// New creates the refresh simulator. Start must be called to begin
// ticking.
func New(l log.Logger, cfg refresh.Config, notify refresh.Notifier) (refresh.Service, error) {
	if l == nil {
		return nil, errLoggerRequired
	}
	if notify == nil {
		return nil, errNotifierRequired
	}
	if cfg.Interval <= 0 {
		return nil, errInvalidInterval
	}
	return &service{
		l:        l,
		interval: cfg.Interval,
		notify:   notify,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}
