package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dashboard-srv/internal/event"
	"dashboard-srv/internal/note"
	"dashboard-srv/pkg/log"
)

func newTestStore(t *testing.T, cfg note.Config, seed []note.Note) note.UseCase {
	t.Helper()
	uc, err := New(log.Noop(), cfg, seed, event.Nop(), "user-test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return uc
}

func defaultConfig() note.Config {
	return note.Config{MaxNotes: 100, MaxNoteLength: 1000}
}

func TestAddPrependsWithIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, defaultConfig(), note.Seed())

	added, err := uc.Add(ctx, "follow up with finance")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added.ID == "" {
		t.Error("Add() should assign an id")
	}
	if added.Timestamp.IsZero() {
		t.Error("Add() should stamp the note")
	}

	notes := uc.List()
	if len(notes) != 3 {
		t.Fatalf("Count = %d, want 3", len(notes))
	}
	if notes[0].ID != added.ID {
		t.Errorf("new note should be first, got id %s", notes[0].ID)
	}
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "empty content",
			content: "",
			wantErr: note.ErrEmptyContent,
		},
		{
			name:    "whitespace only",
			content: "   \n\t ",
			wantErr: note.ErrEmptyContent,
		},
		{
			name:    "over length",
			content: strings.Repeat("a", 1001),
			wantErr: note.ErrContentTooLong,
		},
		{
			name:    "exactly at length",
			content: strings.Repeat("a", 1000),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestStore(t, defaultConfig(), note.Seed())
			before := uc.Count()

			_, err := uc.Add(ctx, tt.content)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil && uc.Count() != before {
				t.Errorf("rejected Add() changed the collection: %d -> %d", before, uc.Count())
			}
		})
	}
}

func TestAddRejectedAtLimit(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, note.Config{MaxNotes: 3, MaxNoteLength: 1000}, note.Seed())

	if _, err := uc.Add(ctx, "third note"); err != nil {
		t.Fatalf("Add() below limit error = %v", err)
	}
	if !uc.AtLimit() {
		t.Fatal("AtLimit() = false at capacity")
	}
	if uc.RemainingCapacity() != 0 {
		t.Errorf("RemainingCapacity() = %d, want 0", uc.RemainingCapacity())
	}

	if _, err := uc.Add(ctx, "one too many"); !errors.Is(err, note.ErrLimitReached) {
		t.Fatalf("Add() at limit error = %v, want ErrLimitReached", err)
	}
	if uc.Count() != 3 {
		t.Errorf("Count = %d after rejected Add, want 3", uc.Count())
	}
}

func TestUpdatePreservesTimestamp(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, defaultConfig(), note.Seed())

	original, ok := uc.GetByID("seed-1")
	if !ok {
		t.Fatal("seed-1 should exist")
	}

	updated, err := uc.Update(ctx, "seed-1", "revised content")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Content != "revised content" {
		t.Errorf("Content = %q", updated.Content)
	}
	if !updated.Timestamp.Equal(original.Timestamp) {
		t.Error("Update() should preserve the original timestamp")
	}
}

func TestUpdateUnknownID(t *testing.T) {
	uc := newTestStore(t, defaultConfig(), note.Seed())

	_, err := uc.Update(context.Background(), "nope", "content")
	if !errors.Is(err, note.ErrNoteNotFound) {
		t.Fatalf("Update() error = %v, want ErrNoteNotFound", err)
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, defaultConfig(), note.Seed())

	before := uc.Count()
	uc.Delete(ctx, "nope")
	if uc.Count() != before {
		t.Errorf("Count = %d, want %d", uc.Count(), before)
	}

	uc.Delete(ctx, "seed-1")
	if uc.Count() != before-1 {
		t.Errorf("Count = %d after delete, want %d", uc.Count(), before-1)
	}
	if _, ok := uc.GetByID("seed-1"); ok {
		t.Error("seed-1 should be gone")
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, defaultConfig(), nil)

	if _, err := uc.Add(ctx, "Review the Henderson contract"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := uc.Add(ctx, "book travel for the offsite"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got := uc.Search("HENDERSON")
	if len(got) != 1 {
		t.Fatalf("Search() returned %d notes, want 1", len(got))
	}
	if got := uc.Search("zzz"); len(got) != 0 {
		t.Errorf("Search() returned %d notes, want 0", len(got))
	}
}

func TestClearAndReset(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t, defaultConfig(), note.Seed())

	uc.Clear(ctx)
	if uc.Count() != 0 {
		t.Fatalf("Count = %d after Clear, want 0", uc.Count())
	}

	uc.Reset(ctx)
	if uc.Count() != len(note.Seed()) {
		t.Fatalf("Count = %d after Reset, want %d", uc.Count(), len(note.Seed()))
	}
	if _, ok := uc.GetByID("seed-2"); !ok {
		t.Error("Reset() should restore seed notes")
	}
}

func TestNewValidatesDependencies(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "nil logger",
			run: func() error {
				_, err := New(nil, defaultConfig(), nil, event.Nop(), "u")
				return err
			},
		},
		{
			name: "nil publisher",
			run: func() error {
				_, err := New(log.Noop(), defaultConfig(), nil, nil, "u")
				return err
			},
		},
		{
			name: "zero limits",
			run: func() error {
				_, err := New(log.Noop(), note.Config{}, nil, event.Nop(), "u")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); err == nil {
				t.Fatal("New() should fail")
			}
		})
	}
}
