package auth

import "golang.org/x/crypto/bcrypt"

// Hasher derives and verifies bcrypt digests. Each Hash call salts
// independently, so equal inputs produce different digests.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. A non-positive cost
// falls back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Any failure, including a
// malformed digest, counts as a mismatch: verification errors must never be
// mistaken for success.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
