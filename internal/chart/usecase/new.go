package usecase

import (
	"errors"
	"sync"

	"dashboard-srv/internal/chart"
	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
)

var (
	errLoggerRequired    = errors.New("chart: logger is required")
	errPublisherRequired = errors.New("chart: event publisher is required")
)

type coordinator struct {
	l      log.Logger
	pub    event.Publisher
	userID string

	mu         sync.Mutex
	activity   chart.Period
	conversion chart.Period
	source     chart.Period
}

// New creates a chart period coordinator with every selector at the
// default period.
func New(l log.Logger, pub event.Publisher, userID string) (chart.UseCase, error) {
	if l == nil {
		return nil, errLoggerRequired
	}
	if pub == nil {
		return nil, errPublisherRequired
	}
	return &coordinator{
		l:          l,
		pub:        pub,
		userID:     userID,
		activity:   chart.DefaultPeriod,
		conversion: chart.DefaultPeriod,
		source:     chart.DefaultPeriod,
	}, nil
}
