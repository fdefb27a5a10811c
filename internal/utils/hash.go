package utils

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HashBytes computes a raw HMAC-SHA256 digest over data.
// A new HMAC instance is created on each call.
func HashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
