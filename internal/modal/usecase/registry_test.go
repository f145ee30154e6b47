package usecase

import (
	"context"
	"testing"

	"dashboard-srv/internal/event"
	"dashboard-srv/internal/modal"
	"dashboard-srv/pkg/log"
)

// countingGuard records every Lock/Unlock call to verify edge-triggering.
type countingGuard struct {
	locks   int
	unlocks int
	locked  bool
	offset  int
}

func (g *countingGuard) Lock(offset int) {
	g.locks++
	g.locked = true
	g.offset = offset
}

func (g *countingGuard) Unlock() int {
	g.unlocks++
	g.locked = false
	return g.offset
}

func (g *countingGuard) Locked() bool { return g.locked }
func (g *countingGuard) Offset() int  { return g.offset }

func newTestRegistry(t *testing.T, cfg modal.Config, guard modal.ScrollGuard) modal.UseCase {
	t.Helper()
	uc, err := New(log.Noop(), cfg, guard, event.Nop(), "user-test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return uc
}

func TestRegistryExclusiveKeepsAtMostOneOpen(t *testing.T) {
	ctx := context.Background()
	uc := newTestRegistry(t, modal.DefaultConfig(), NewScrollGuard())

	sequence := []struct {
		op string
		id string
	}{
		{"open", modal.ModalNotes},
		{"open", modal.ModalAlerts},
		{"toggle", modal.ModalSettings},
		{"open", modal.ModalExport},
		{"toggle", modal.ModalExport},
		{"open", modal.ModalNotes},
		{"close", modal.ModalAlerts},
		{"open", modal.ModalMeeting},
	}

	for _, step := range sequence {
		switch step.op {
		case "open":
			if err := uc.Open(ctx, modal.OpenInput{ID: step.id}); err != nil {
				t.Fatalf("Open(%q) error = %v", step.id, err)
			}
		case "close":
			uc.Close(ctx, step.id)
		case "toggle":
			if err := uc.Toggle(ctx, modal.OpenInput{ID: step.id}); err != nil {
				t.Fatalf("Toggle(%q) error = %v", step.id, err)
			}
		}
		if count := uc.OpenCount(); count > 1 {
			t.Fatalf("after %s(%q): open count = %d, want 0 or 1", step.op, step.id, count)
		}
	}
}

func TestRegistryExclusivityScenario(t *testing.T) {
	ctx := context.Background()
	uc := newTestRegistry(t, modal.DefaultConfig(), NewScrollGuard())

	if uc.AnyOpen() {
		t.Fatal("registry should start empty")
	}

	if err := uc.Open(ctx, modal.OpenInput{ID: modal.ModalNotes}); err != nil {
		t.Fatalf("Open(notes) error = %v", err)
	}
	if !uc.IsOpen(modal.ModalNotes) {
		t.Error("notes should be open")
	}
	if got := uc.OpenCount(); got != 1 {
		t.Errorf("open count = %d, want 1", got)
	}

	if err := uc.Open(ctx, modal.OpenInput{ID: modal.ModalAlerts}); err != nil {
		t.Fatalf("Open(alerts) error = %v", err)
	}
	if uc.IsOpen(modal.ModalNotes) {
		t.Error("notes should have been closed by opening alerts")
	}
	if !uc.IsOpen(modal.ModalAlerts) {
		t.Error("alerts should be open")
	}
	if got := uc.OpenCount(); got != 1 {
		t.Errorf("open count = %d, want 1", got)
	}
}

func TestRegistryNonExclusiveAllowsMultiple(t *testing.T) {
	ctx := context.Background()
	uc := newTestRegistry(t, modal.Config{Exclusive: false, ScrollLock: true}, NewScrollGuard())

	uc.Open(ctx, modal.OpenInput{ID: modal.ModalNotes})
	uc.Open(ctx, modal.OpenInput{ID: modal.ModalAlerts})

	if got := uc.OpenCount(); got != 2 {
		t.Fatalf("open count = %d, want 2", got)
	}
	open := uc.OpenModals()
	if len(open) != 2 || open[0] != modal.ModalNotes || open[1] != modal.ModalAlerts {
		t.Errorf("OpenModals() = %v, want [notes alerts] in order", open)
	}
}

func TestRegistryCloseIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc := newTestRegistry(t, modal.DefaultConfig(), NewScrollGuard())

	uc.Open(ctx, modal.OpenInput{ID: modal.ModalNotes})
	uc.Close(ctx, modal.ModalNotes)
	state := uc.State()

	// Second close of the same id must not change anything.
	uc.Close(ctx, modal.ModalNotes)
	if got := uc.State(); got.AnyOpen != state.AnyOpen || got.OpenCount != state.OpenCount {
		t.Errorf("second Close changed state: %+v != %+v", got, state)
	}

	// Closing an id that was never opened is a no-op too.
	uc.Close(ctx, "never-opened")
	if uc.AnyOpen() {
		t.Error("closing unknown id should not open anything")
	}
}

func TestRegistryOpenEmptyIDRejected(t *testing.T) {
	ctx := context.Background()
	uc := newTestRegistry(t, modal.DefaultConfig(), NewScrollGuard())

	if err := uc.Open(ctx, modal.OpenInput{ID: ""}); err != modal.ErrInvalidModalID {
		t.Errorf("Open(\"\") error = %v, want ErrInvalidModalID", err)
	}
	if uc.AnyOpen() {
		t.Error("rejected open must leave state unchanged")
	}
}

func TestRegistryScrollGuardEdgeTriggered(t *testing.T) {
	ctx := context.Background()
	guard := &countingGuard{}
	uc := newTestRegistry(t, modal.DefaultConfig(), guard)

	uc.Open(ctx, modal.OpenInput{ID: modal.ModalNotes, ScrollOffset: 420})
	if guard.locks != 1 {
		t.Fatalf("guard locks = %d, want 1", guard.locks)
	}
	if guard.offset != 420 {
		t.Errorf("guard offset = %d, want 420", guard.offset)
	}

	// Switching modals keeps "any open" true: no further guard calls.
	uc.Open(ctx, modal.OpenInput{ID: modal.ModalAlerts, ScrollOffset: 999})
	uc.Open(ctx, modal.OpenInput{ID: modal.ModalSettings})
	if guard.locks != 1 || guard.unlocks != 0 {
		t.Fatalf("guard calls after switches = %d locks/%d unlocks, want 1/0", guard.locks, guard.unlocks)
	}

	uc.CloseAll(ctx)
	if guard.unlocks != 1 {
		t.Fatalf("guard unlocks = %d, want 1", guard.unlocks)
	}

	// CloseAll on an empty set is not a transition.
	uc.CloseAll(ctx)
	if guard.unlocks != 1 {
		t.Errorf("guard unlocks after redundant CloseAll = %d, want 1", guard.unlocks)
	}
}

func TestRegistryStateSnapshot(t *testing.T) {
	ctx := context.Background()
	uc := newTestRegistry(t, modal.DefaultConfig(), NewScrollGuard())

	uc.Open(ctx, modal.OpenInput{ID: modal.ModalExport, ScrollOffset: 64})
	state := uc.State()

	if !state.AnyOpen || state.OpenCount != 1 {
		t.Errorf("state = %+v, want one open modal", state)
	}
	if !state.ScrollLocked || state.ScrollOffset != 64 {
		t.Errorf("state scroll = locked %v offset %d, want locked with offset 64", state.ScrollLocked, state.ScrollOffset)
	}
	if len(state.OpenModals) != 1 || state.OpenModals[0] != modal.ModalExport {
		t.Errorf("state.OpenModals = %v, want [export]", state.OpenModals)
	}
}

func TestNewValidatesDependencies(t *testing.T) {
	if _, err := New(nil, modal.DefaultConfig(), NewScrollGuard(), event.Nop(), "u"); err == nil {
		t.Error("New without logger should fail")
	}
	if _, err := New(log.Noop(), modal.DefaultConfig(), NewScrollGuard(), nil, "u"); err == nil {
		t.Error("New without publisher should fail")
	}
	if _, err := New(log.Noop(), modal.DefaultConfig(), nil, event.Nop(), "u"); err == nil {
		t.Error("New without guard should fail when scroll lock is enabled")
	}
	if _, err := New(log.Noop(), modal.Config{Exclusive: true, ScrollLock: false}, nil, event.Nop(), "u"); err != nil {
		t.Errorf("New without guard should succeed when scroll lock is disabled, got %v", err)
	}
}
