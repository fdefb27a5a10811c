// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists users and encrypted vault entries in PostgreSQL or
// SQLite. Every vault query is scoped by owner_id; ciphertext is never
// parsed here.
package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultRepository stores (id, owner_id, ciphertext, created_at) tuples.
// A row that does not exist and a row owned by someone else are both
// reported as [ErrEntryNotFound].
type VaultRepository interface {
	Create(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	List(ctx context.Context, ownerID string, filter models.ListFilter) ([]models.VaultEntry, error)
	Update(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
