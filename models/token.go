package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT together with the values extracted from it.
type Token struct {
	// Token is the underlying JWT; excluded from JSON because only the
	// compact form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"token"`

	// UserID is the "sub" claim.
	UserID string `json:"-"`

	// ExpiresAt is the "exp" claim.
	ExpiresAt time.Time `json:"expires_at"`
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return t.SignedString
}

// IsZero reports whether the token carries no signed string.
func (t Token) IsZero() bool {
	return t.SignedString == ""
}
