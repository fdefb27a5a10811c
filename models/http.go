package models

import "time"

// KeyParamsRequest asks the server for the key-derivation salt of an account.
type KeyParamsRequest struct {
	Email string `json:"email"`
}

// KeyParamsResponse carries the key-derivation salt.
type KeyParamsResponse struct {
	KeySalt []byte `json:"key_salt"`
}

// SignUpResponse is returned by POST /api/auth/signup.
type SignUpResponse struct {
	ID string `json:"id"`
}

// EntryRequest is the body of vault create and update calls.
type EntryRequest struct {
	Ciphertext string `json:"ciphertext"`
}

// EntryCreatedResponse is returned by POST /api/vault/.
type EntryCreatedResponse struct {
	ID string `json:"id"`
}

// EntryResponse is one element of the GET /api/vault/ response.
type EntryResponse struct {
	ID         string    `json:"id"`
	Ciphertext string    `json:"ciphertext"`
	CreatedAt  time.Time `json:"created_at"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}
