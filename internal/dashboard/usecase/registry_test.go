package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"dashboard-srv/internal/chart"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/event"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/log"
)

func testConfig() dashboard.Config {
	return dashboard.Config{
		MaxAlerts:          50,
		MaxNotes:           100,
		MaxNoteLength:      1000,
		ExclusiveModals:    true,
		MaxSessions:        10,
		SessionIdleTimeout: time.Hour,
	}
}

func newTestRegistry(t *testing.T, cfg dashboard.Config) dashboard.UseCase {
	t.Helper()
	uc, err := New(log.Noop(), cfg, event.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return uc
}

func TestSessionCreatedLazilyAndReused(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t, testConfig())
	sc := model.Scope{UserID: "user-1"}

	first, err := reg.Session(ctx, sc)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if first.Modals == nil || first.Alerts == nil || first.Notes == nil || first.Charts == nil || first.Agenda == nil {
		t.Fatal("session should have all five stores wired")
	}
	if first.Alerts.Count() == 0 {
		t.Error("fresh session should carry seeded alerts")
	}

	second, err := reg.Session(ctx, sc)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if first != second {
		t.Error("repeated access should return the same session")
	}
	if got := reg.Stats().ActiveSessions; got != 1 {
		t.Errorf("ActiveSessions = %d, want 1", got)
	}
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t, testConfig())

	a, err := reg.Session(ctx, model.Scope{UserID: "user-a"})
	if err != nil {
		t.Fatalf("Session(a) error = %v", err)
	}
	b, err := reg.Session(ctx, model.Scope{UserID: "user-b"})
	if err != nil {
		t.Fatalf("Session(b) error = %v", err)
	}

	if _, err := a.Notes.Add(ctx, "only for user a"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := len(b.Notes.Search("only for user a")); got != 0 {
		t.Errorf("user b sees %d of user a's notes, want 0", got)
	}
}

func TestSessionLimit(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.MaxSessions = 2
	reg := newTestRegistry(t, cfg)

	for i := 0; i < 2; i++ {
		if _, err := reg.Session(ctx, model.Scope{UserID: fmt.Sprintf("user-%d", i)}); err != nil {
			t.Fatalf("Session() error = %v", err)
		}
	}

	_, err := reg.Session(ctx, model.Scope{UserID: "user-overflow"})
	if !errors.Is(err, dashboard.ErrSessionLimitReached) {
		t.Fatalf("Session() error = %v, want ErrSessionLimitReached", err)
	}

	// An existing user still gets through at the ceiling.
	if _, err := reg.Session(ctx, model.Scope{UserID: "user-0"}); err != nil {
		t.Errorf("Session() for existing user error = %v", err)
	}
}

func TestResetDataRestoresAgendaAndCharts(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t, testConfig())
	sc := model.Scope{UserID: "user-1"}

	s, err := reg.Session(ctx, sc)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}

	s.Agenda.RemoveMeeting(ctx, "meeting-seed-1")
	if err := s.Charts.SetAllPeriods(ctx, chart.PeriodYear); err != nil {
		t.Fatalf("SetAllPeriods() error = %v", err)
	}
	if _, err := s.Notes.Add(ctx, "survives reset"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	notesBefore := s.Notes.Count()

	if err := reg.ResetData(ctx, sc); err != nil {
		t.Fatalf("ResetData() error = %v", err)
	}

	if got := len(s.Agenda.Meetings()); got != 3 {
		t.Errorf("Meetings() = %d after reset, want 3", got)
	}
	if got := s.Charts.State().ActivityPeriod; got != chart.PeriodWeek {
		t.Errorf("ActivityPeriod = %s after reset, want week", got)
	}
	if got := s.Notes.Count(); got != notesBefore {
		t.Errorf("Notes.Count() = %d after reset, want %d untouched", got, notesBefore)
	}
}

func TestDropAndRecreate(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t, testConfig())
	sc := model.Scope{UserID: "user-1"}

	s, err := reg.Session(ctx, sc)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if _, err := s.Notes.Add(ctx, "gone after drop"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	reg.Drop(ctx, sc.UserID)
	if got := reg.Stats().ActiveSessions; got != 0 {
		t.Fatalf("ActiveSessions = %d after drop, want 0", got)
	}

	fresh, err := reg.Session(ctx, sc)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if got := len(fresh.Notes.Search("gone after drop")); got != 0 {
		t.Errorf("recreated session sees %d old notes, want 0", got)
	}
}

func TestEvictIdle(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.SessionIdleTimeout = time.Minute
	reg := newTestRegistry(t, cfg)

	if _, err := reg.Session(ctx, model.Scope{UserID: "user-1"}); err != nil {
		t.Fatalf("Session() error = %v", err)
	}

	if got := reg.EvictIdle(ctx, time.Now()); got != 0 {
		t.Errorf("EvictIdle(now) = %d, want 0", got)
	}
	if got := reg.EvictIdle(ctx, time.Now().Add(2*time.Minute)); got != 1 {
		t.Errorf("EvictIdle(now+2m) = %d, want 1", got)
	}
	if got := reg.Stats().ActiveSessions; got != 0 {
		t.Errorf("ActiveSessions = %d after eviction, want 0", got)
	}
}

func TestNewValidatesDependencies(t *testing.T) {
	if _, err := New(nil, testConfig(), event.Nop()); err == nil {
		t.Error("New() with nil logger should fail")
	}
	if _, err := New(log.Noop(), testConfig(), nil); err == nil {
		t.Error("New() with nil publisher should fail")
	}
	if _, err := New(log.Noop(), dashboard.Config{}, event.Nop()); err == nil {
		t.Error("New() with zero config should fail")
	}
}
