package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

// sealedRecord is the canonical plaintext. Field order is fixed by the
// struct, so equal records always serialize to equal bytes.
type sealedRecord struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
}

var sealedFields = []string{"title", "username", "password", "url", "notes"}

type aesGCMTransform struct{}

// NewTransform returns the AES-256-GCM [Transform]. The blob is the standard
// Base64 encoding of nonce (12 bytes) ‖ ciphertext ‖ tag.
func NewTransform() Transform {
	return aesGCMTransform{}
}

func (aesGCMTransform) Seal(record models.VaultRecord, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	plaintext, err := json.Marshal(sealedRecord{
		Title:    record.Title,
		Username: record.Username,
		Password: record.Password,
		URL:      record.URL,
		Notes:    record.Notes,
	})
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (aesGCMTransform) Open(blob string, key []byte) (models.VaultRecord, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.VaultRecord{}, err
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: bad encoding", ErrDecryptionFailed)
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize+gcm.Overhead() {
		return models.VaultRecord{}, fmt.Errorf("%w: blob too short", ErrDecryptionFailed)
	}

	plaintext, err := gcm.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return models.VaultRecord{}, ErrDecryptionFailed
	}

	return parsePlaintext(plaintext)
}

// parsePlaintext requires all five sealed fields. title and url must be
// strings; the others may also be null.
func parsePlaintext(plaintext []byte) (models.VaultRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(plaintext, &fields); err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: not a json object", ErrMalformedPlaintext)
	}

	for _, name := range sealedFields {
		if _, ok := fields[name]; !ok {
			return models.VaultRecord{}, fmt.Errorf("%w: missing %s", ErrMalformedPlaintext, name)
		}
	}
	for _, name := range []string{"title", "url"} {
		var s string
		if err := json.Unmarshal(fields[name], &s); err != nil || string(fields[name]) == "null" {
			return models.VaultRecord{}, fmt.Errorf("%w: %s is not a string", ErrMalformedPlaintext, name)
		}
	}

	var rec sealedRecord
	if err := json.Unmarshal(plaintext, &rec); err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %s", ErrMalformedPlaintext, err.Error())
	}

	return models.VaultRecord{
		Title:    rec.Title,
		Username: rec.Username,
		Password: rec.Password,
		URL:      rec.URL,
		Notes:    rec.Notes,
	}, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
