package encryption

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecureToken returns a URL-safe random token with 256 bits of
// entropy, suitable for unguessable download links.
func GenerateSecureToken() string {
	b := make([]byte, 32)

	if _, err := rand.Read(b); err != nil {
		panic("failed to generate secure random token: " + err.Error())
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
