package refresh

import (
	"context"
	"time"

	"dashboard-srv/internal/alert"
)

// Config drives the simulated background data refresh.
type Config struct {
	Enabled  bool
	Interval time.Duration
}

// Notifier receives the alert produced by a refresh tick. The service
// never touches alert stores directly; distribution is the caller's
// concern.
type Notifier func(ctx context.Context, input alert.CreateInput)

// Service is the periodic refresh simulator. Each tick produces at most
// one alert, handed to the injected Notifier.
type Service interface {
	Start()
	Shutdown(ctx context.Context) error
}
