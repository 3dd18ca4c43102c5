// Package security contains everything related to the security of user data
package security

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxSecretLength is the bcrypt input limit. Longer secrets are cut to this
// many bytes on both the hashing and the verifying path
const MaxSecretLength = 72

type Hasher struct {
	Cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Hasher{Cost: cost}
}

// Hash returns a salted bcrypt digest of p in modular crypt format
func (h *Hasher) Hash(p string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(p), h.Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Verify reports whether p reproduces the stored digest e. A malformed
// digest never verifies
func (h *Hasher) Verify(p, e string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e), truncate(p)) == nil
}

func truncate(p string) []byte {
	b := []byte(p)
	if len(b) > MaxSecretLength {
		b = b[:MaxSecretLength]
	}

	return b
}
