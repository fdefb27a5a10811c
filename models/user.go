package models

import "time"

// User is an account that owns vault entries.
//
// Email is stored trimmed and lower-cased and is unique across the users
// table. PasswordHash is a bcrypt hash of the auth secret the client derives
// from the master password; the server never sees the master password itself.
type User struct {
	// ID is a UUIDv7 assigned by the server at signup.
	ID string `json:"id"`

	// Email is the login identifier.
	Email string `json:"email"`

	// PasswordHash is never serialized.
	PasswordHash string `json:"-"`

	// KeySalt is the random salt chosen by the client at signup and used for
	// client-side key derivation. It is not a secret.
	KeySalt []byte `json:"-"`

	// CreatedAt is the moment the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the signup/login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// KeySalt is only sent on signup.
	KeySalt []byte `json:"key_salt,omitempty"`
}
