package models

import "time"

// VaultRecord is a decrypted credential. It lives only in client memory.
//
// Only Title, Username, Password, URL and Notes are sealed into the
// ciphertext; ID and CreatedAt are copied from the enclosing [VaultEntry].
type VaultRecord struct {
	ID        string
	Title     string
	Username  string
	Password  string
	URL       string
	Notes     string
	CreatedAt time.Time
}

// VaultEntry is the persisted, encrypted form of a record.
type VaultEntry struct {
	ID string `json:"id"`

	// OwnerID is enforced by the store on every read and write and is never
	// returned to API callers.
	OwnerID string `json:"-"`

	// Ciphertext is opaque to the server.
	Ciphertext string `json:"ciphertext"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the VaultEntry model.
func (e VaultEntry) TableName() string {
	return "vault_entries"
}

// ListOrder is the created_at ordering applied by the store.
type ListOrder string

const (
	ListNewestFirst ListOrder = "newest"
	ListOldestFirst ListOrder = "oldest"
)

// ListFilter narrows a vault listing using only columns that are stored in
// clear: the owner and the creation time. Title or username filtering stays
// on the client because those fields are encrypted.
type ListFilter struct {
	Order         ListOrder
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         uint64
}

// SortOrder selects how a client session orders decrypted records.
type SortOrder string

const (
	SortTitleAsc  SortOrder = "title-asc"
	SortTitleDesc SortOrder = "title-desc"
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
)

// SortOrders lists the supported orders in the order the UI cycles through them.
var SortOrders = []SortOrder{SortNewest, SortOldest, SortTitleAsc, SortTitleDesc}

// Session is the authenticated client state. It is never persisted.
type Session struct {
	Email         string
	UserID        string
	Token         string
	EncryptionKey []byte
}
