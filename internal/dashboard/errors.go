package dashboard

import "errors"

var ErrSessionLimitReached = errors.New("session limit reached")
