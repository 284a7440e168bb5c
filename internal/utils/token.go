package utils

import (
	"crypto/rand"  // Cryptographically secure random source
	"encoding/hex" // Hex encoding for opaque tokens
)

// NewToken mints an opaque session token with n bytes of entropy.
// The token has no internal structure; all session state lives
// server-side, so possession of the string is the whole credential.
func NewToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err // Out of entropy; caller must fail the login
	}
	return hex.EncodeToString(b), nil
}
