package http

import (
	"net/http"

	"dashboard-srv/internal/modal"
	"dashboard-srv/pkg/errors"
)

var errInvalidBody = errors.NewHTTPError(40000, "Invalid request body", http.StatusBadRequest)

func (h *Handler) mapError(err error) error {
	switch err {
	case modal.ErrInvalidModalID:
		return errors.NewHTTPError(40001, "Invalid modal id", http.StatusBadRequest)
	default:
		// Unknown errors panic to be caught by the recovery middleware.
		panic(err)
	}
}
