// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The adapter keeps no session state: every
// vault call receives the bearer token explicitly, and an HTTP 401 comes back
// as a [*SessionExpiredError] for the caller to act on.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server.
type ServerAdapter interface {
	// SignUp registers an account and returns the server-assigned user ID.
	SignUp(ctx context.Context, creds models.Credentials) (string, error)

	// KeyParams fetches the key-derivation salt for email. Unknown emails
	// get a stable decoy salt, so success says nothing about existence.
	KeyParams(ctx context.Context, email string) ([]byte, error)

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// CreateEntry stores a new ciphertext and returns its ID.
	CreateEntry(ctx context.Context, token, ciphertext string) (string, error)

	// ListEntries returns the caller's entries filtered server-side by
	// created_at only.
	ListEntries(ctx context.Context, token string, filter models.ListFilter) ([]models.VaultEntry, error)

	// UpdateEntry replaces the ciphertext of one entry.
	UpdateEntry(ctx context.Context, token, id, ciphertext string) error

	// DeleteEntry removes one entry.
	DeleteEntry(ctx context.Context, token, id string) error
}
