package modal

import "errors"

var (
	// ErrInvalidModalID is returned when an open/toggle request carries an
	// empty id. Closing unknown ids is a silent no-op by contract.
	ErrInvalidModalID = errors.New("invalid modal id")
)
