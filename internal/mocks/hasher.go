package mocks

import (
	"strings"
	"sync"
)

// Hasher is a reversible stand-in for the argon2id hasher. It keeps tests
// fast; it must never leave test code.
type Hasher struct{}

const hashPrefix = "plain$"

func (Hasher) Hash(password string) (string, error) {
	return hashPrefix + password, nil
}

func (Hasher) Verify(encoded, password string) (bool, error) {
	return strings.TrimPrefix(encoded, hashPrefix) == password && strings.HasPrefix(encoded, hashPrefix), nil
}

// SpyHasher wraps Hasher, recording every encoded value it verifies. Hash
// fails with HashErr when set.
type SpyHasher struct {
	Hasher
	HashErr error

	mu       sync.Mutex
	verified []string
}

func (h *SpyHasher) Hash(password string) (string, error) {
	if h.HashErr != nil {
		return "", h.HashErr
	}
	return h.Hasher.Hash(password)
}

func (h *SpyHasher) Verify(encoded, password string) (bool, error) {
	h.mu.Lock()
	h.verified = append(h.verified, encoded)
	h.mu.Unlock()
	return h.Hasher.Verify(encoded, password)
}

// Verified returns the encoded hashes passed to Verify, in call order
func (h *SpyHasher) Verified() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.verified...)
}
