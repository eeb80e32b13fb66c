package impl

import (
	"context"
	"path/filepath"
	"testing"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/auth"
	"accounts/internal/infra/persistence/model"
	"accounts/internal/infra/persistence/postgres"
	"accounts/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// buildAccountStack wires the real repositories, hasher and token generator on
// top of a throwaway SQLite database. Only the store differs from production.
func buildAccountStack(t *testing.T) (usecase.AccountUsecase, usecase.AuthUsecase) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "accounts.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.WorkspaceModel{},
		&model.OrganizationModel{},
		&model.MembershipModel{},
	))

	userRepo := postgres.NewUserRepository(db)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	log := newDiscardLogger()

	accounts := NewAccountService(AccountServiceParams{
		TxManager:      postgres.NewTransactionManager(db),
		UserRepo:       userRepo,
		WorkspaceRepo:  postgres.NewWorkspaceRepository(db),
		OrgRepo:        postgres.NewOrganizationRepository(db),
		MembershipRepo: postgres.NewMembershipRepository(db),
		Hasher:         hasher,
		Secrets:        auth.NewRandomTokenGenerator(),
		Logger:         log,
	})
	authn := NewAuthService(AuthServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   log,
	})

	return accounts, authn
}

func TestAccountFlow_CreateAuthenticateAndTearDown(t *testing.T) {
	accounts, authn := buildAccountStack(t)
	ctx := context.Background()

	user, err := accounts.CreateUser(ctx, &usecase.CreateUserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "correct horse battery staple",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.APIKey)
	assert.NotEmpty(t, user.PasswordResetToken)
	assert.NotEqual(t, user.APIKey, user.PasswordResetToken)
	assert.NotContains(t, user.PasswordHash, "correct horse")

	// The credential round trip works end to end.
	authed, err := authn.AuthenticateUser(ctx, "ada", "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = authn.AuthenticateUser(ctx, "ada", "wrong password")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = authn.AuthenticateUser(ctx, "nobody", "correct horse battery staple")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	// API-key lookup resolves the same user.
	byKey, err := accounts.GetUserByAPIKey(ctx, user.APIKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byKey.ID)

	workspace, err := accounts.CreateWorkspace(ctx, &usecase.CreateWorkspaceInput{Name: "research"})
	require.NoError(t, err)

	membership, err := accounts.CreateMembership(ctx, &usecase.CreateMembershipInput{
		UserID:      user.ID,
		WorkspaceID: workspace.ID,
	})
	require.NoError(t, err)

	found, err := accounts.GetMembership(ctx, user.ID, workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, membership.UserID, found.UserID)

	// Deleting the user takes its memberships with it but leaves the workspace.
	_, err = accounts.DeleteUser(ctx, user)
	require.NoError(t, err)

	_, err = accounts.GetUserByUsername(ctx, "ada")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = accounts.GetMembership(ctx, user.ID, workspace.ID)
	assert.ErrorIs(t, err, repository.ErrMembershipNotFound)
	_, err = accounts.GetWorkspaceByID(ctx, workspace.ID)
	require.NoError(t, err)
}

func TestAccountFlow_DuplicateUsernameAcrossService(t *testing.T) {
	accounts, _ := buildAccountStack(t)
	ctx := context.Background()

	input := &usecase.CreateUserInput{Username: "ada", Email: "ada@example.com", Password: "pw"}
	_, err := accounts.CreateUser(ctx, input)
	require.NoError(t, err)

	_, err = accounts.CreateUser(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}
