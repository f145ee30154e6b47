package alert

import "errors"

var (
	ErrEmptyMessage = errors.New("alert message is required")
	ErrInvalidType  = errors.New("invalid alert type")
)
