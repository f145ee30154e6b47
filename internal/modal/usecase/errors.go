package usecase

import "errors"

var (
	errLoggerRequired    = errors.New("modal: logger is required")
	errPublisherRequired = errors.New("modal: event publisher is required")
	errGuardRequired     = errors.New("modal: scroll guard is required when scroll lock is enabled")
)
