// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

const (
	saltSize = 16
	keySize  = 32

	authInfo       = "go-pass-vault/auth"
	encryptionInfo = "go-pass-vault/encryption"
)

// DerivedKeys is the output of [KeyChain.DeriveKeys].
type DerivedKeys struct {
	// AuthSecret is hex encoded and sent to the server in place of the
	// master password.
	AuthSecret string
	// EncryptionKey seals and opens vault records.
	EncryptionKey []byte
}

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyChain constructs a [KeyChain] with the Argon2id parameters
// recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewKeyChain() KeyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
	}
}

func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

func (k *keyChain) DeriveKeys(masterPassword string, salt []byte) (DerivedKeys, error) {
	if masterPassword == "" {
		return DerivedKeys{}, errors.New("master password is empty")
	}
	if len(salt) == 0 {
		return DerivedKeys{}, errors.New("salt is empty")
	}

	root := argon2.IDKey([]byte(masterPassword), salt, k.argonTime, k.argonMemory, k.argonThreads, keySize)

	auth, err := expand(root, authInfo)
	if err != nil {
		return DerivedKeys{}, err
	}
	enc, err := expand(root, encryptionInfo)
	if err != nil {
		return DerivedKeys{}, err
	}

	return DerivedKeys{
		AuthSecret:    hex.EncodeToString(auth),
		EncryptionKey: enc,
	}, nil
}

// expand derives one independent subkey from root; info separates the
// auth secret from the encryption key.
func expand(root []byte, info string) ([]byte, error) {
	out := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, root, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("hkdf expand %s: %w", info, err)
	}
	return out, nil
}
