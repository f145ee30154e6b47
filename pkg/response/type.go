package response

import "dashboard-srv/pkg/errors"

const (
	// DefaultStackTraceDepth bounds captured stack frames for error reports.
	DefaultStackTraceDepth = 32
	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "Something went wrong"
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	ValidationErrorCode     = 400
	ValidationErrorMsg      = "Validation error"
	InternalServerErrorCode = 500

	// DiscordMaxMessageLen is the chunk size for error reports.
	DiscordMaxMessageLen = 5000
)

// Resp is the unified JSON response envelope.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain errors to HTTP errors at the delivery layer.
type ErrorMapping map[error]*errors.HTTPError
