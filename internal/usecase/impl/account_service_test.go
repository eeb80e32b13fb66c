package impl

import (
	"context"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service        usecase.AccountUsecase
	txManager      *fakeTransactionManager
	userRepo       *mockUserRepository
	workspaceRepo  *mockWorkspaceRepository
	orgRepo        *mockOrganizationRepository
	membershipRepo *mockMembershipRepository
	hasher         *mockPasswordHasher
	secrets        *mockSecretGenerator
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	workspaceRepo := &mockWorkspaceRepository{}
	orgRepo := &mockOrganizationRepository{}
	membershipRepo := &mockMembershipRepository{}
	hasher := &mockPasswordHasher{}
	secrets := &mockSecretGenerator{}

	txManager := &fakeTransactionManager{factory: &fakeRepositoryFactory{
		userRepo:       userRepo,
		workspaceRepo:  workspaceRepo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
	}}

	svc := NewAccountService(AccountServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		WorkspaceRepo:  workspaceRepo,
		OrgRepo:        orgRepo,
		MembershipRepo: membershipRepo,
		Hasher:         hasher,
		Secrets:        secrets,
		Logger:         newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:        svc,
		txManager:      txManager,
		userRepo:       userRepo,
		workspaceRepo:  workspaceRepo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		hasher:         hasher,
		secrets:        secrets,
	}
}

func TestAccountService_CreateUser_HashesPasswordAndGeneratesSecrets(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.CreateUserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "plaintext-password",
	}

	fx.hasher.On("Hash", "plaintext-password").Return("hashed", nil)
	fx.secrets.On("Generate").Return("api-key-token", nil).Once()
	fx.secrets.On("Generate").Return("reset-token", nil).Once()

	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.NotEqual(t, input.Password, user.PasswordHash)
	assert.Equal(t, "api-key-token", user.APIKey)
	assert.Equal(t, "reset-token", user.PasswordResetToken)
	fx.userRepo.AssertExpectations(t)
	fx.secrets.AssertExpectations(t)
}

func TestAccountService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "pw").Return("", errors.New("bcrypt unavailable"))

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{Username: "ada", Password: "pw"})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	fx.userRepo.AssertNotCalled(t, "Create")
}

func TestAccountService_CreateUser_UniquenessViolationPropagates(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "pw").Return("hashed", nil)
	fx.secrets.On("Generate").Return("token", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{Username: "ada", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_DeleteUser_RemovesMembershipsInSameTransaction(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "ada"}

	fx.membershipRepo.On("DeleteByUserID", ctx, user.ID).Return(nil)
	fx.userRepo.On("Delete", ctx, user.ID).Return(nil)

	deleted, err := fx.service.DeleteUser(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, user, deleted)
	assert.Equal(t, 1, fx.txManager.executed)
	fx.membershipRepo.AssertExpectations(t)
	fx.userRepo.AssertExpectations(t)
}

func TestAccountService_DeleteUser_MembershipFailureRollsBack(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New()}
	fx.membershipRepo.On("DeleteByUserID", ctx, user.ID).Return(errors.New("disk full"))

	deleted, err := fx.service.DeleteUser(ctx, user)

	require.Error(t, err)
	assert.Nil(t, deleted)
	// The user delete must never run once the membership cleanup failed.
	fx.userRepo.AssertNotCalled(t, "Delete")
}

func TestAccountService_CreateWorkspace_RoundTrip(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.workspaceRepo.On("Create", ctx, mock.AnythingOfType("*entity.Workspace")).
		Run(func(args mock.Arguments) {
			workspace := args.Get(1).(*entity.Workspace)
			workspace.ID = uuid.New()
		}).
		Return(nil)

	workspace, err := fx.service.CreateWorkspace(ctx, &usecase.CreateWorkspaceInput{Name: "ws1"})

	require.NoError(t, err)
	assert.Equal(t, "ws1", workspace.Name)
	assert.NotEqual(t, uuid.Nil, workspace.ID)
}

func TestAccountService_DeleteWorkspace_RemovesMembershipsInSameTransaction(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	workspace := &entity.Workspace{ID: uuid.New(), Name: "ws1"}

	fx.membershipRepo.On("DeleteByWorkspaceID", ctx, workspace.ID).Return(nil)
	fx.workspaceRepo.On("Delete", ctx, workspace.ID).Return(nil)

	deleted, err := fx.service.DeleteWorkspace(ctx, workspace)

	require.NoError(t, err)
	assert.Equal(t, workspace, deleted)
	assert.Equal(t, 1, fx.txManager.executed)
}

func TestAccountService_CreateMembership_ReferentialViolationPropagates(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.CreateMembershipInput{UserID: uuid.New(), WorkspaceID: uuid.New()}
	fx.membershipRepo.On("Create", ctx, mock.AnythingOfType("*entity.Membership")).
		Return(domainerrors.ErrReferentialIntegrity)

	_, err := fx.service.CreateMembership(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReferentialIntegrity)
}

func TestAccountService_CreateMembership_DuplicatePairPropagates(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.CreateMembershipInput{UserID: uuid.New(), WorkspaceID: uuid.New()}
	fx.membershipRepo.On("Create", ctx, mock.AnythingOfType("*entity.Membership")).
		Return(domainerrors.ErrMembershipAlreadyExists)

	_, err := fx.service.CreateMembership(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMembershipAlreadyExists)
}
