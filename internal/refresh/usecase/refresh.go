package usecase

import (
	"context"
	"math/rand"
	"time"

	"dashboard-srv/internal/alert"
)

// simulated alerts a refresh tick can produce.
var ticks = []alert.CreateInput{
	{Message: "Data refresh completed", Type: alert.TypeInfo},
	{Message: "New lead assigned to you", Type: alert.TypeSuccess},
	{Message: "3 leads have gone cold this week", Type: alert.TypeWarning},
	{Message: "Pipeline sync finished with 2 conflicts", Type: alert.TypeWarning},
	{Message: "Monthly quota is 85% reached", Type: alert.TypeInfo},
	{Message: "Follow-up overdue for Henderson Logistics", Type: alert.TypeError},
}

func (s *service) Start() {
	go s.run()
}

func (s *service) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	ctx := context.Background()
	s.l.Infof(ctx, "refresh: simulator started, interval %s", s.interval)

	for {
		select {
		case <-s.stop:
			s.l.Info(ctx, "refresh: simulator stopped")
			return
		case <-ticker.C:
			s.notify(ctx, ticks[rand.Intn(len(ticks))])
		}
	}
}

// Shutdown stops the ticker and waits for the loop to drain.
func (s *service) Shutdown(ctx context.Context) error {
	close(s.stop)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
