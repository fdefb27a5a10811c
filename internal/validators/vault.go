package validators

import (
	"context"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to scope validation and to report which field
// failed.
const (
	FieldTitle      = "title"
	FieldURL        = "url"
	FieldCiphertext = "ciphertext"
	FieldOwnerID    = "owner_id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldKeySalt    = "key_salt"
)

// MaxTitleLength is counted in characters, not bytes.
const MaxTitleLength = 50

// VaultValidator validates decrypted records on the client and vault entries
// and credentials on the server.
type VaultValidator struct {
}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.VaultRecord / *models.VaultRecord (title, url)
//   - models.VaultEntry / *models.VaultEntry (owner_id, ciphertext)
//   - models.Credentials / *models.Credentials (email, password, key_salt)
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultRecord:
		return v.validateRecord(value, fields...)
	case *models.VaultRecord:
		return v.validateRecord(*value, fields...)

	case models.VaultEntry:
		return v.validateEntry(value, fields...)
	case *models.VaultEntry:
		return v.validateEntry(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateRecord(r models.VaultRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(r.Title) == "" {
				return invalid(FieldTitle, "is required")
			}
			if utf8.RuneCountInString(r.Title) > MaxTitleLength {
				return invalid(FieldTitle, "is longer than 50 characters")
			}
		case FieldURL:
			if r.URL != "" && !isHTTPURL(r.URL) {
				return invalid(FieldURL, "must be an absolute http or https URL")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateEntry(e models.VaultEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldCiphertext}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if e.OwnerID == "" {
				return invalid(FieldOwnerID, "is required")
			}
		case FieldCiphertext:
			if e.Ciphertext == "" {
				return invalid(FieldCiphertext, "is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			addr, err := mail.ParseAddress(c.Email)
			if err != nil || addr.Address != c.Email {
				return invalid(FieldEmail, "is not a valid address")
			}
		case FieldPassword:
			if c.Password == "" {
				return invalid(FieldPassword, "is required")
			}
		case FieldKeySalt:
			if len(c.KeySalt) < 16 {
				return invalid(FieldKeySalt, "must be at least 16 bytes")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
