package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthMissing is returned without a network call when a vault
	// operation is attempted with an empty token.
	ErrAuthMissing = errors.New("not logged in")

	// ErrSessionExpired is matched by every [SessionExpiredError].
	ErrSessionExpired = errors.New("session expired")

	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrServerUnavailable  = errors.New("server unavailable")
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// SessionExpiredError is the typed result of a 401 answer. The caller is
// expected to drop its session and ask the user to log in again.
type SessionExpiredError struct {
	// Message is the server's explanation, e.g. "Invalid token".
	Message string
}

func (e *SessionExpiredError) Error() string {
	if e.Message == "" {
		return ErrSessionExpired.Error()
	}
	return fmt.Sprintf("%s: %s", ErrSessionExpired, e.Message)
}

// Is makes errors.Is(err, ErrSessionExpired) true.
func (e *SessionExpiredError) Is(target error) bool {
	return target == ErrSessionExpired
}
