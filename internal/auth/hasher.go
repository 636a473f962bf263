// Package auth provides password hashing for credentials at rest.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor applied to every new digest.
const bcryptCost = 10

// PasswordHasher provides one-way password hashing and verification.
type PasswordHasher interface {
	// Hash produces a salted digest of the plaintext. Two calls with
	// the same plaintext produce different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether the plaintext matches the digest.
	Verify(plaintext, digest string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct{}

// NewBcryptHasher creates a BcryptHasher with the fixed cost factor.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

// Hash produces a bcrypt digest of the plaintext.
// A failure here is an internal error, never user input's fault.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the digest. The
// comparison is constant-time within bcrypt itself; malformed digests
// simply fail to verify.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
