package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewInviteToken returns 20 crypto-random bytes hex-encoded: 40 lowercase
// hex characters.
func NewInviteToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
