package idgen

import (
	"crypto/rand"
	"fmt"
)

// GenerateSecureID generates a cryptographically secure ID with the given prefix and length.
// Uses only alphanumeric characters (0-9, a-z) - no dashes or special characters.
func GenerateSecureID(prefix string, length int) (string, error) {
	bytes := make([]byte, length*2)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	const charset = "0123456789abcdefghijklmnopqrstuvwxyz"
	encoded := make([]byte, length)
	for i := 0; i < length; i++ {
		encoded[i] = charset[bytes[i]%36]
	}

	return fmt.Sprintf("%s_%s", prefix, string(encoded)), nil
}

// ValidateIDFormat reports whether id looks like a generated public ID
// with the expected prefix: "<prefix>_" followed by one or more
// characters from the 0-9a-z charset.
func ValidateIDFormat(id, expectedPrefix string) bool {
	marker := expectedPrefix + "_"
	if len(id) <= len(marker) || id[:len(marker)] != marker {
		return false
	}
	for _, char := range id[len(marker):] {
		if (char < 'a' || char > 'z') && (char < '0' || char > '9') {
			return false
		}
	}
	return true
}
