// Package generator produces random passwords and rates them.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	MinLength     = 8
	MaxLength     = 32
	DefaultLength = 12

	letters   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	lookAlike = "1lIoO0"
)

var ErrInvalidLength = errors.New("password length out of range")

// Options control the character set and length of a generated password.
type Options struct {
	Length            int
	Numbers           bool
	Symbols           bool
	ExcludeLookAlikes bool
}

// DefaultOptions returns 12 characters with numbers and symbols.
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Numbers: true, Symbols: true}
}

// Charset returns the characters a password may be drawn from.
func (o Options) Charset() string {
	charset := letters
	if o.Numbers {
		charset += digits
	}
	if o.Symbols {
		charset += symbols
	}
	if o.ExcludeLookAlikes {
		charset = strings.Map(func(r rune) rune {
			if strings.ContainsRune(lookAlike, r) {
				return -1
			}
			return r
		}, charset)
	}
	return charset
}

// Generator draws characters uniformly from an entropy source.
type Generator struct {
	random io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// Generate returns a password built from opts.Charset.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidLength, opts.Length, MinLength, MaxLength)
	}

	charset := opts.Charset()
	upper := big.NewInt(int64(len(charset)))

	var b strings.Builder
	b.Grow(opts.Length)
	for range opts.Length {
		n, err := rand.Int(g.random, upper)
		if err != nil {
			return "", fmt.Errorf("read entropy: %w", err)
		}
		b.WriteByte(charset[n.Int64()])
	}
	return b.String(), nil
}
