package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// GeneratePin returns length uppercase hex digits from crypto/rand.
func GeneratePin(length int) (string, error) {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate pin: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf))[:length], nil
}

// HashPin digests a PIN for storage. PINs are short lived and single use, a
// plain SHA-256 keeps the raw value out of the database.
func HashPin(pin string) string {
	sum := sha256.Sum256([]byte(strings.ToUpper(strings.TrimSpace(pin))))
	return hex.EncodeToString(sum[:])
}

// PinMatches compares a submitted PIN against a stored digest in constant time
func PinMatches(storedHash, pin string) bool {
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(HashPin(pin))) == 1
}
