package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChain owns all client-side key material. It knows nothing about the
// network, the database or users.
//
// Key flow:
//
//	Salt                   = GenerateSalt()                      (signup only)
//	Root                   = Argon2id(masterPassword, Salt)
//	AuthSecret, EncKey     = HKDF-SHA256(Root, "auth"), HKDF-SHA256(Root, "enc")
//
// AuthSecret is what the server sees as the account password. EncKey never
// leaves client memory.
type KeyChain interface {
	// GenerateSalt returns 16 random bytes. The salt is not a secret and is
	// stored by the server next to the account.
	GenerateSalt() ([]byte, error)

	// DeriveKeys derives the auth secret and the encryption key from the
	// master password and the account salt.
	DeriveKeys(masterPassword string, salt []byte) (DerivedKeys, error)
}

// Transform converts vault records to opaque blobs and back.
type Transform interface {
	// Seal canonicalizes the sealed fields of record and encrypts them
	// under key. Every call uses a fresh nonce.
	Seal(record models.VaultRecord, key []byte) (string, error)

	// Open reverses Seal. It fails with [ErrDecryptionFailed] for a wrong
	// key or a corrupted blob and with [ErrMalformedPlaintext] when the
	// decrypted bytes are not a valid record. ID and CreatedAt stay zero.
	Open(blob string, key []byte) (models.VaultRecord, error)
}
