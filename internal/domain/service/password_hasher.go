// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The output embeds
	// its own parameters and salt, so verification needs no side channel.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// A malformed stored hash counts as a mismatch, never a failure.
	Check(password, hash string) bool

	// CheckDummy verifies a throwaway password against a dummy hash built with
	// the same parameters as real credentials, consuming the same wall-clock
	// time as a real verification. Callers
	// run it on the user-not-found path so that an absent account cannot be
	// told apart from a wrong password by measuring response latency.
	CheckDummy()
}
