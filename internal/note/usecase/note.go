package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"dashboard-srv/internal/event"
	"dashboard-srv/internal/note"
)

// Validate is the pre-flight check for note content. Add applies exactly
// the same rules, so a content Validate accepts is never rejected by Add
// (save for the capacity limit, which Validate does not cover).
func (s *store) Validate(content string) error {
	if strings.TrimSpace(content) == "" {
		return note.ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > s.cfg.MaxNoteLength {
		return note.ErrContentTooLong
	}
	return nil
}

// Add validates content, stamps the note and prepends it.
func (s *store) Add(ctx context.Context, content string) (note.Note, error) {
	if err := s.Validate(content); err != nil {
		return note.Note{}, err
	}

	s.mu.Lock()
	if len(s.notes) >= s.cfg.MaxNotes {
		s.mu.Unlock()
		return note.Note{}, note.ErrLimitReached
	}
	n := note.Note{
		ID:        uuid.New().String(),
		Content:   content,
		Timestamp: time.Now(),
	}
	s.notes = append([]note.Note{n}, s.notes...)
	s.mu.Unlock()

	s.pub.Publish(ctx, s.userID, event.New(event.DomainNote, event.ActionAdded, n))
	return n, nil
}

// Delete removes the note by id; unknown ids are a no-op.
func (s *store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	deleted := false
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			deleted = true
			break
		}
	}
	s.mu.Unlock()

	if deleted {
		s.pub.Publish(ctx, s.userID, event.New(event.DomainNote, event.ActionRemoved, id))
	}
}

// Update replaces the note's content in place, preserving its id and
// original timestamp.
func (s *store) Update(ctx context.Context, id, content string) (note.Note, error) {
	if err := s.Validate(content); err != nil {
		return note.Note{}, err
	}

	s.mu.Lock()
	var updated note.Note
	found := false
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Content = content
			updated = s.notes[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return note.Note{}, note.ErrNoteNotFound
	}
	s.pub.Publish(ctx, s.userID, event.New(event.DomainNote, event.ActionUpdated, updated))
	return updated, nil
}

// Clear empties the collection without touching the seed.
func (s *store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.notes = s.notes[:0]
	s.mu.Unlock()

	s.pub.Publish(ctx, s.userID, event.New(event.DomainNote, event.ActionCleared, nil))
}

// Reset restores the collection to its initial seed.
func (s *store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.notes = append(s.notes[:0], s.seed...)
	s.mu.Unlock()

	s.pub.Publish(ctx, s.userID, event.New(event.DomainNote, event.ActionReset, nil))
}

// List returns all notes, newest first.
func (s *store) List() []note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]note.Note(nil), s.notes...)
}

// Search matches content by case-insensitive substring.
func (s *store) Search(query string) []note.Note {
	q := strings.ToLower(query)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]note.Note, 0)
	for _, n := range s.notes {
		if strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

func (s *store) GetByID(id string) (note.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return note.Note{}, false
}

func (s *store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

func (s *store) AtLimit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes) >= s.cfg.MaxNotes
}

func (s *store) RemainingCapacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	remaining := s.cfg.MaxNotes - len(s.notes)
	if remaining < 0 {
		return 0
	}
	return remaining
}
