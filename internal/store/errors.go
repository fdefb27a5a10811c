package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email
	// is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no account matches the email.
	ErrUserNotFound = errors.New("no user was found")

	// ErrEntryNotFound is returned when no row matches both the entry id and
	// the owner id.
	ErrEntryNotFound = errors.New("vault entry was not found")

	// ErrStorageUnavailable wraps every driver or connection failure. The
	// caller may retry; the store never does.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
var ErrBuildingSQLQuery = errors.New("error building sql query")
