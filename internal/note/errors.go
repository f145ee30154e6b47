package note

import "errors"

var (
	ErrEmptyContent   = errors.New("note content is empty")
	ErrContentTooLong = errors.New("note content exceeds maximum length")
	ErrLimitReached   = errors.New("note limit reached")
	ErrNoteNotFound   = errors.New("note not found")
)
