package service

import "errors"

// Server-side errors.
var (
	// ErrAuthMissing is returned when no verified user id is present. Nothing
	// is read or written in that case.
	ErrAuthMissing = errors.New("authentication required")

	// ErrAuthInvalid covers malformed tokens and tokens whose signature or
	// issuer do not verify.
	ErrAuthInvalid = errors.New("invalid token")

	// ErrAuthExpired is returned for a correctly signed token past its expiry.
	ErrAuthExpired = errors.New("token expired")

	// ErrNotFound is returned for a missing entry, an entry owned by another
	// user and an entry id that is not a UUID alike.
	ErrNotFound = errors.New("entry not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// Client-side errors.
var (
	// ErrSessionExpired tells the UI to drop the session and show the login
	// screen.
	ErrSessionExpired = errors.New("session expired, please log in again")

	// ErrPartialDecrypt is matched by every [PartialDecryptError].
	ErrPartialDecrypt = errors.New("partial decrypt")

	ErrServerUnavailable = errors.New("server unavailable")
)

// PartialDecryptError is returned together with the records that did
// decrypt. It is not fatal.
type PartialDecryptError struct {
	Failed int
	Total  int
}

func (e *PartialDecryptError) Error() string {
	if e.Failed >= e.Total {
		return "no items could be decrypted"
	}
	return "some items could not be decrypted"
}

// Is makes errors.Is(err, ErrPartialDecrypt) true.
func (e *PartialDecryptError) Is(target error) bool {
	return target == ErrPartialDecrypt
}
