package scope

import "errors"

var (
	// ErrInvalidToken is returned when a JWT token is invalid, expired, or malformed.
	ErrInvalidToken = errors.New("invalid token")
	// ErrSecretRequired is returned when the manager is built without a secret key.
	ErrSecretRequired = errors.New("scope: secret key is required")
)
