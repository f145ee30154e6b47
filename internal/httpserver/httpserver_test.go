package httpserver

import (
	"context"
	"testing"
	"time"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/pkg/log"
)

// evictRecorder stubs the session registry and records EvictIdle calls.
type evictRecorder struct {
	dashboard.UseCase
	calls chan time.Time
}

func (r *evictRecorder) EvictIdle(ctx context.Context, now time.Time) int {
	select {
	case r.calls <- now:
	default:
	}
	return 0
}

func TestEvictLoopCallsRegistryPeriodically(t *testing.T) {
	rec := &evictRecorder{calls: make(chan time.Time, 16)}
	s := &HTTPServer{
		logger:        log.Noop(),
		sessions:      rec,
		evictInterval: 5 * time.Millisecond,
		evictStop:     make(chan struct{}),
		evictDone:     make(chan struct{}),
	}

	go s.evictLoop()

	for i := 0; i < 2; i++ {
		select {
		case <-rec.calls:
		case <-time.After(2 * time.Second):
			t.Fatal("eviction loop did not tick")
		}
	}

	close(s.evictStop)
	select {
	case <-s.evictDone:
	case <-time.After(2 * time.Second):
		t.Fatal("eviction loop did not stop")
	}

	for len(rec.calls) > 0 {
		<-rec.calls
	}
	select {
	case <-rec.calls:
		t.Error("eviction loop ticked after stop")
	case <-time.After(25 * time.Millisecond):
	}
}
