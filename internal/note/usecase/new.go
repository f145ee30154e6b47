package usecase

import (
	"errors"
	"sync"

	"dashboard-srv/internal/event"
	"dashboard-srv/internal/note"
	"dashboard-srv/pkg/log"
)

var (
	errLoggerRequired    = errors.New("note: logger is required")
	errPublisherRequired = errors.New("note: event publisher is required")
	errInvalidConfig     = errors.New("note: MaxNotes and MaxNoteLength must be positive")
)

type store struct {
	l      log.Logger
	cfg    note.Config
	pub    event.Publisher
	userID string

	mu    sync.Mutex
	notes []note.Note
	seed  []note.Note
}

// New creates a note store seeded with the given notes.
func New(l log.Logger, cfg note.Config, seed []note.Note, pub event.Publisher, userID string) (note.UseCase, error) {
	if l == nil {
		return nil, errLoggerRequired
	}
	if pub == nil {
		return nil, errPublisherRequired
	}
	if cfg.MaxNotes < 1 || cfg.MaxNoteLength < 1 {
		return nil, errInvalidConfig
	}
	if len(seed) > cfg.MaxNotes {
		seed = seed[:cfg.MaxNotes]
	}
	s := &store{
		l:      l,
		cfg:    cfg,
		pub:    pub,
		userID: userID,
		seed:   append([]note.Note(nil), seed...),
	}
	s.notes = append([]note.Note(nil), seed...)
	return s, nil
}
