package ws

import (
	"net/http"

	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case event.ErrMissingToken:
		return errors.NewHTTPError(http.StatusUnauthorized, "Missing authentication token", http.StatusUnauthorized)
	case event.ErrInvalidToken:
		return errors.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token", http.StatusUnauthorized)
	case event.ErrMaxConnectionsReached:
		return errors.NewHTTPError(http.StatusServiceUnavailable, "Maximum connections reached", http.StatusServiceUnavailable)
	default:
		panic(err)
	}
}
