// Package crypto implements server-side password hashing and verification.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (tuned for server-side hashing).
const (
	argonTime    uint32 = 3         // iterations
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
)

// SaltLen is the length of per-user auth salts.
const SaltLen = 16

// NewSalt returns a fresh cryptographically secure salt.
func NewSalt() ([]byte, error) {
	b := make([]byte, SaltLen)
	_, err := rand.Read(b)
	return b, err
}

// HashPassword returns the Argon2id hash of password under the given salt.
// The hash is one-way; the only supported operation on it is VerifyPassword.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPassword reports whether password hashes to expected under salt.
// Comparison is constant-time.
func VerifyPassword(password, salt, expected []byte) bool {
	got := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(got, expected) == 1
}
