package service

// SecretGenerator produces opaque, URL-safe random credential material.
// API keys and password reset tokens are generated through this interface so
// tests can substitute deterministic values.
type SecretGenerator interface {
	// Generate returns a fresh random token.
	Generate() (string, error)
}
