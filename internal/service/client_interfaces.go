package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account creation
// and authentication. Implementations derive the per-user keys from the
// master password and talk to the server adapter.
type ClientAuthService interface {
	// SignUp generates a fresh key salt, derives the auth secret and the
	// encryption key, registers the account and logs in with the same keys.
	SignUp(ctx context.Context, email, masterPassword string) (models.Session, error)

	// Login fetches the key salt for email, re-derives both keys and
	// exchanges the auth secret for a token. The master password never
	// leaves the process.
	Login(ctx context.Context, email, masterPassword string) (models.Session, error)
}

// ClientSessionService operates on decrypted records. Every call that talks
// to the server takes the session explicitly; nothing is cached between
// calls.
type ClientSessionService interface {
	// Refresh lists and decrypts the vault. When some blobs fail to open the
	// surviving records are returned together with a *PartialDecryptError.
	Refresh(ctx context.Context, session models.Session, filter models.ListFilter) ([]models.VaultRecord, error)

	// Search filters records by a case-insensitive substring of title,
	// username or url. An empty query returns records unchanged.
	Search(records []models.VaultRecord, query string) []models.VaultRecord

	// Sort returns a sorted copy of records.
	Sort(records []models.VaultRecord, order models.SortOrder) []models.VaultRecord

	// Save validates and seals record, then creates it when ID is empty and
	// updates it otherwise. Returns the entry id.
	Save(ctx context.Context, session models.Session, record models.VaultRecord) (string, error)

	Delete(ctx context.Context, session models.Session, id string) error
}
