package http

import (
	"net/http"

	"dashboard-srv/internal/agenda"
	"dashboard-srv/pkg/errors"
)

var (
	errInvalidBody  = errors.NewHTTPError(40000, "Invalid request body", http.StatusBadRequest)
	errInvalidQuery = errors.NewHTTPError(40002, "Invalid query parameters", http.StatusBadRequest)
	errInvalidView  = errors.NewHTTPError(40040, "Invalid meeting view", http.StatusBadRequest)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case agenda.ErrEmptyTitle:
		return errors.NewHTTPError(40041, "Title is required", http.StatusBadRequest)
	case agenda.ErrInvalidMeetingType:
		return errors.NewHTTPError(40042, "Invalid meeting type", http.StatusBadRequest)
	case agenda.ErrInvalidPriority:
		return errors.NewHTTPError(40043, "Invalid activity priority", http.StatusBadRequest)
	case agenda.ErrMeetingNotFound:
		return errors.NewNotFoundHTTPError("Meeting not found")
	default:
		// Unknown errors panic to be caught by the recovery middleware.
		panic(err)
	}
}
