package http

import (
	"net/http"

	"dashboard-srv/internal/note"
	"dashboard-srv/pkg/errors"
)

var (
	errInvalidBody  = errors.NewHTTPError(40000, "Invalid request body", http.StatusBadRequest)
	errInvalidQuery = errors.NewHTTPError(40002, "Invalid query parameters", http.StatusBadRequest)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case note.ErrEmptyContent:
		return errors.NewHTTPError(40020, "Note content is empty", http.StatusBadRequest)
	case note.ErrContentTooLong:
		return errors.NewHTTPError(40021, "Note content exceeds the maximum length", http.StatusBadRequest)
	case note.ErrLimitReached:
		return errors.NewHTTPError(40022, "Note limit reached", http.StatusBadRequest)
	case note.ErrNoteNotFound:
		return errors.NewNotFoundHTTPError("Note not found")
	default:
		// Unknown errors panic to be caught by the recovery middleware.
		panic(err)
	}
}
