package http

import (
	"net/http"

	"dashboard-srv/internal/chart"
	"dashboard-srv/pkg/errors"
)

var (
	errInvalidBody  = errors.NewHTTPError(40000, "Invalid request body", http.StatusBadRequest)
	errUnknownChart = errors.NewNotFoundHTTPError("Unknown chart")
)

func (h *Handler) mapError(err error) error {
	switch err {
	case chart.ErrInvalidPeriod:
		return errors.NewHTTPError(40030, "Invalid chart period", http.StatusBadRequest)
	default:
		// Unknown errors panic to be caught by the recovery middleware.
		panic(err)
	}
}
