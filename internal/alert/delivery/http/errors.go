package http

import (
	"net/http"

	"dashboard-srv/internal/alert"
	"dashboard-srv/pkg/errors"
)

var (
	errInvalidBody  = errors.NewHTTPError(40000, "Invalid request body", http.StatusBadRequest)
	errInvalidQuery = errors.NewHTTPError(40002, "Invalid query parameters", http.StatusBadRequest)
	errInvalidID    = errors.NewHTTPError(40003, "Invalid alert id", http.StatusBadRequest)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case alert.ErrEmptyMessage:
		return errors.NewHTTPError(40010, "Alert message is required", http.StatusBadRequest)
	case alert.ErrInvalidType:
		return errors.NewHTTPError(40011, "Invalid alert type", http.StatusBadRequest)
	default:
		// Unknown errors panic to be caught by the recovery middleware.
		panic(err)
	}
}
