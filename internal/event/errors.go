package event

import "errors"

var (
	ErrInvalidEvent          = errors.New("invalid event")
	ErrMaxConnectionsReached = errors.New("maximum connections reached")
	ErrHubClosed             = errors.New("event hub is shut down")
	ErrMissingToken          = errors.New("missing authentication token")
	ErrInvalidToken          = errors.New("invalid or expired token")
)
