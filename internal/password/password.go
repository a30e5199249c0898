package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Hasher derives and verifies password hashes using PBKDF2-SHA256 with a
// random per-profile salt. The encoded form is
// "<iterations>$<salt hex>$<key hex>" so Verify can recompute the key with
// the parameters the hash was created with.
type Hasher struct {
	Iterations int // PBKDF2 iteration count
	SaltLen    int // Salt length in bytes
	KeyLen     int // Derived key length in bytes
}

// New creates a Hasher with the default parameters.
func New() *Hasher {
	return &Hasher{
		Iterations: 100000,
		SaltLen:    16,
		KeyLen:     32,
	}
}

// Hash derives a salted hash of the password. A fresh random salt is
// generated on every call, so hashing the same password twice yields
// different encoded strings.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.Iterations, h.KeyLen, sha256.New)

	return fmt.Sprintf("%d$%s$%s",
		h.Iterations,
		hex.EncodeToString(salt),
		hex.EncodeToString(key),
	), nil
}

// Verify recomputes the key from the encoded hash's own parameters and
// compares it in constant time. It returns false for an empty or malformed
// encoded hash, never an error.
func (h *Hasher) Verify(encoded, password string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return false
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
