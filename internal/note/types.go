package note

import "time"

// Note is one free-text note of a dashboard session.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Config bounds the note collection.
type Config struct {
	// MaxNotes caps the collection size. Add is rejected at the limit.
	MaxNotes int
	// MaxNoteLength caps content length in runes. Longer content is
	// rejected, not truncated, so Validate and Add always agree.
	MaxNoteLength int
}
