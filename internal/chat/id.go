package chat

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewSessionID generates an opaque session identifier.
// 32 bytes = 256 bits of entropy.
func NewSessionID() (string, error) {

	const size = 32

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("chat: failed to generate session id: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
