package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// InviteTokenSize gives invite tokens 256 bits of entropy (43 base64url chars).
const InviteTokenSize = 32

// GenerateToken returns size random bytes as unpadded base64url.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// FingerprintToken is the SHA-256 of token as base64url. Tokens are stored
// and looked up by fingerprint only.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// NewInviteToken mints an invite token together with its fingerprint.
func NewInviteToken() (token, fingerprint string, err error) {
	token, err = GenerateToken(InviteTokenSize)
	if err != nil {
		return "", "", err
	}
	return token, FingerprintToken(token), nil
}
