// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"accounts/internal/domain/service"
)

// dummyPassword is the throwaway plaintext behind the dummy hash. It is never
// a valid credential.
const dummyPassword = "dummy-password"

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	dummyHash string
}

// NewBcryptHasher is the constructor for bcryptHasher. A cost outside bcrypt's
// valid range falls back to bcrypt.DefaultCost.
// The dummy hash is derived once here at the configured cost, so CheckDummy
// costs the same wall-clock time as verifying a stored credential.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	// GenerateFromPassword cannot fail once the cost is in range.
	dummy, _ := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)

	return &bcryptHasher{cost: cost, dummyHash: string(dummy)}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt generates a distinct salt per call and embeds it in the output.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
// A malformed stored hash yields false, not an error: a corrupted row must be
// indistinguishable from a wrong password.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// CheckDummy burns one full bcrypt verification against the precomputed
// dummy hash. The result is discarded and nothing is logged.
func (h *bcryptHasher) CheckDummy() {
	_ = bcrypt.CompareHashAndPassword([]byte(h.dummyHash), []byte(dummyPassword))
}
