package crypto

import "errors"

var (
	// ErrDecryptionFailed means the key is wrong or the blob is corrupted.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrMalformedPlaintext means decryption succeeded but the bytes are not a record.
	ErrMalformedPlaintext = errors.New("malformed plaintext")
	// ErrInvalidKey means the key is not 32 bytes long.
	ErrInvalidKey = errors.New("encryption key must be 32 bytes")
)
