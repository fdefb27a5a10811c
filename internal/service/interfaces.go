// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue signs a token for userID valid for the configured duration.
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify checks signature, issuer and expiry. Failures match
	// ErrAuthInvalid or ErrAuthExpired and never yield an anonymous identity.
	Verify(ctx context.Context, tokenString string) (models.Token, error)
}

// AuthService manages accounts.
type AuthService interface {
	// SignUp registers creds. The password is the client-derived auth secret
	// and is stored bcrypt-hashed.
	SignUp(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login checks creds and issues a token.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// KeyParams returns the key-derivation salt of email, or a stable decoy
	// for unknown emails.
	KeyParams(ctx context.Context, email string) ([]byte, error)
}

// VaultService gates the vault repository behind the user id carried in the
// context.
type VaultService interface {
	Create(ctx context.Context, ciphertext string) (models.VaultEntry, error)
	List(ctx context.Context, filter models.ListFilter) ([]models.VaultEntry, error)
	Update(ctx context.Context, id, ciphertext string) (models.VaultEntry, error)
	Delete(ctx context.Context, id string) error
}

// HealthService reports whether the server can serve vault requests.
type HealthService interface {
	// Ready returns nil when the storage backend answers.
	Ready(ctx context.Context) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
