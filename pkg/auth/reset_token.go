package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = 10 * time.Minute

const resetTokenBytes = 32

// ResetToken is a freshly issued password reset token. Only Hash is stored;
// Plain is handed to the user once.
type ResetToken struct {
	Plain     string
	Hash      string
	ExpiresAt time.Time
}

// NewResetToken generates a random reset token valid for ResetTokenTTL.
func NewResetToken(now time.Time) (*ResetToken, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	plain := hex.EncodeToString(buf)
	return &ResetToken{
		Plain:     plain,
		Hash:      HashToken(plain),
		ExpiresAt: now.Add(ResetTokenTTL),
	}, nil
}

// HashToken returns the SHA-256 hash of the token as a hex string.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// CompareHashes securely compares two token hashes using constant-time comparison.
func CompareHashes(hash1, hash2 string) bool {
	return subtle.ConstantTimeCompare([]byte(hash1), []byte(hash2)) == 1
}
