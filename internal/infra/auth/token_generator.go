package auth

import (
	"crypto/rand"
	"encoding/base64"

	"accounts/internal/domain/service"

	"github.com/pkg/errors"
)

// tokenByteLength yields 32-character URL-safe tokens, enough entropy for
// bearer credentials.
const tokenByteLength = 24

// randomTokenGenerator implements SecretGenerator with crypto/rand material.
type randomTokenGenerator struct{}

// NewRandomTokenGenerator is the constructor for randomTokenGenerator.
func NewRandomTokenGenerator() service.SecretGenerator {
	return &randomTokenGenerator{}
}

// Generate returns a fresh URL-safe random token.
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random token material")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
