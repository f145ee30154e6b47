package usecase

import (
	"context"
	"fmt"
	"testing"

	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
)

func newTestStore(t *testing.T, maxAlerts int, seed []alert.Alert) alert.UseCase {
	t.Helper()
	uc, err := New(log.Noop(), alert.Config{MaxAlerts: maxAlerts}, seed, event.Nop(), "user-test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return uc
}

func TestAddPrependsAndAssignsID(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, 10, alert.Seed())

	added, err := uc.Add(ctx, alert.CreateInput{Message: "new alert", Type: alert.TypeInfo})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added.ID == 0 {
		t.Error("Add() should assign a nonzero id")
	}
	if added.Time == "" {
		t.Error("Add() should assign a default time")
	}

	alerts := uc.List()
	if alerts[0].ID != added.ID {
		t.Errorf("new alert should be first, got id %d", alerts[0].ID)
	}
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   alert.CreateInput
		wantErr error
	}{
		{
			name:    "empty message",
			input:   alert.CreateInput{Message: "", Type: alert.TypeInfo},
			wantErr: alert.ErrEmptyMessage,
		},
		{
			name:    "whitespace message",
			input:   alert.CreateInput{Message: "   ", Type: alert.TypeInfo},
			wantErr: alert.ErrEmptyMessage,
		},
		{
			name:    "unknown type",
			input:   alert.CreateInput{Message: "msg", Type: "critical"},
			wantErr: alert.ErrInvalidType,
		},
		{
			name:  "empty type defaults to info",
			input: alert.CreateInput{Message: "msg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestStore(t, 10, nil)
			before := uc.Count()
			added, err := uc.Add(ctx, tt.input)
			if err != tt.wantErr {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if uc.Count() != before {
					t.Error("rejected Add must leave the collection unchanged")
				}
				return
			}
			if added.Type != alert.TypeInfo {
				t.Errorf("default type = %s, want info", added.Type)
			}
		})
	}
}

func TestCapacityBoundHeldUnderAnyMutation(t *testing.T) {
	ctx := context.Background()
	const maxAlerts = 5
	uc := newTestStore(t, maxAlerts, alert.Seed())

	for i := 0; i < 20; i++ {
		if _, err := uc.Add(ctx, alert.CreateInput{Message: fmt.Sprintf("alert %d", i)}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if got := uc.Count(); got > maxAlerts {
			t.Fatalf("after add %d: count = %d, exceeds max %d", i, got, maxAlerts)
		}
	}
}

func TestCapacityEvictsOldestFirst(t *testing.T) {
	ctx := context.Background()
	seed := alert.Seed() // 5 alerts, oldest has ID 1 at the tail
	uc := newTestStore(t, 5, seed)

	added, err := uc.Add(ctx, alert.CreateInput{Message: "new", Type: alert.TypeInfo})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	alerts := uc.List()
	if len(alerts) != 5 {
		t.Fatalf("count = %d, want 5", len(alerts))
	}
	if alerts[0].ID != added.ID {
		t.Error("new alert should be present at the head")
	}
	oldest := seed[len(seed)-1]
	for _, a := range alerts {
		if a.ID == oldest.ID {
			t.Errorf("oldest seeded alert (id %d) should have been evicted", oldest.ID)
		}
	}
}

func TestRemoveAndDismissUnknownIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, 10, alert.Seed())
	before := uc.Count()

	uc.Remove(ctx, 9999)
	uc.Dismiss(ctx, 9999)

	if uc.Count() != before {
		t.Error("unknown-id remove/dismiss must not change the collection")
	}
}

func TestDismissHidesFromActiveView(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, 10, alert.Seed())

	uc.Dismiss(ctx, 4)

	if got := uc.Count(); got != 5 {
		t.Errorf("Count() = %d, dismiss must not delete", got)
	}
	if got := uc.ActiveCount(); got != 4 {
		t.Errorf("ActiveCount() = %d, want 4", got)
	}
	for _, a := range uc.Active() {
		if a.ID == 4 {
			t.Error("dismissed alert must not appear in Active()")
		}
	}
}

func TestResetRestoresExactSeed(t *testing.T) {
	ctx := context.Background()
	seed := alert.Seed()
	uc := newTestStore(t, 10, seed)

	uc.Add(ctx, alert.CreateInput{Message: "extra"})
	uc.Dismiss(ctx, 3)
	uc.Remove(ctx, 2)
	uc.Reset(ctx)

	alerts := uc.List()
	if len(alerts) != len(seed) {
		t.Fatalf("after reset: count = %d, want %d", len(alerts), len(seed))
	}
	for i, a := range alerts {
		if a != seed[i] {
			t.Errorf("alert[%d] = %+v, want seed %+v", i, a, seed[i])
		}
	}
}

func TestClearLeavesSeedIntact(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, 10, alert.Seed())

	uc.Clear(ctx)
	if uc.Count() != 0 {
		t.Fatal("Clear() should empty the collection")
	}

	uc.Reset(ctx)
	if uc.Count() != len(alert.Seed()) {
		t.Error("Reset() after Clear() should restore the seed")
	}
}

func TestTypeQueriesAndPredicates(t *testing.T) {
	uc := newTestStore(t, 10, alert.Seed())

	warnings := uc.ByType(alert.TypeWarning)
	if len(warnings) != 1 {
		t.Errorf("ByType(warning) returned %d alerts, want 1", len(warnings))
	}
	if !uc.HasWarnings() {
		t.Error("HasWarnings() = false, seed contains a warning")
	}
	if !uc.HasErrors() {
		t.Error("HasErrors() = false, seed contains an error")
	}

	ctx := context.Background()
	uc.Clear(ctx)
	if uc.HasWarnings() || uc.HasErrors() {
		t.Error("predicates should be false on an empty collection")
	}
}
