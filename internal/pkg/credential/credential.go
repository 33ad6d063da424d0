// Package credential produces owner credentials: the password digest and the
// opaque API key.
//
// The digest is a single unsalted SHA-256 over the UTF-8 password bytes.
// That is a known weakness, but login verification depends on reproducing
// stored digests exactly, so changing the algorithm requires a credential
// migration first.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// NewAPIKey returns a fresh opaque credential: 16 random bytes (128 bits of
// entropy) hex encoded.
func NewAPIKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
