package impl

import (
	"context"
	"log/slog"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// AuthenticateUser verifies a username/password pair.
//
// When no user matches the username, a dummy verification runs at the same
// bcrypt cost before failing. Skipping it would let an attacker enumerate valid
// usernames by timing responses: a real verification costs milliseconds of
// bcrypt work that an early return would not pay. Both failure modes return
// ErrInvalidCredentials, so the caller cannot tell them apart either.
func (srv *authService) AuthenticateUser(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.CheckDummy()
			srv.logger.Warn("Authentication failed", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
		}

		return nil, errors.Wrap(err, "failed to load user for authentication")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.logger.Warn("Authentication failed", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	return user, nil
}
