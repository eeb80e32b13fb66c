package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// AuthUsecase verifies interactive credentials.
type AuthUsecase interface {
	// AuthenticateUser looks up the user by username and verifies the supplied
	// password against the stored hash. Unknown-username and wrong-password
	// failures return the same error and consume the same wall-clock time.
	AuthenticateUser(ctx context.Context, username, password string) (*entity.User, error)
}
