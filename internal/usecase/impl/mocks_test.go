package impl

import (
	"context"
	"io"
	"log/slog"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify doubles for the repository and service interfaces used
// by the services under test.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByAPIKey(ctx context.Context, apiKey string) (*entity.User, error) {
	args := m.Called(ctx, apiKey)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockWorkspaceRepository struct {
	mock.Mock
}

func (m *mockWorkspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	args := m.Called(ctx, id)
	workspace, _ := args.Get(0).(*entity.Workspace)

	return workspace, args.Error(1)
}

func (m *mockWorkspaceRepository) List(ctx context.Context) ([]*entity.Workspace, error) {
	args := m.Called(ctx)
	workspaces, _ := args.Get(0).([]*entity.Workspace)

	return workspaces, args.Error(1)
}

func (m *mockWorkspaceRepository) Create(ctx context.Context, workspace *entity.Workspace) error {
	return m.Called(ctx, workspace).Error(0)
}

func (m *mockWorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrganizationRepository struct {
	mock.Mock
}

func (m *mockOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	args := m.Called(ctx, id)
	organization, _ := args.Get(0).(*entity.Organization)

	return organization, args.Error(1)
}

func (m *mockOrganizationRepository) List(ctx context.Context) ([]*entity.Organization, error) {
	args := m.Called(ctx)
	organizations, _ := args.Get(0).([]*entity.Organization)

	return organizations, args.Error(1)
}

func (m *mockOrganizationRepository) Create(ctx context.Context, organization *entity.Organization) error {
	return m.Called(ctx, organization).Error(0)
}

func (m *mockOrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockMembershipRepository struct {
	mock.Mock
}

func (m *mockMembershipRepository) FindByUserAndWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Membership, error) {
	args := m.Called(ctx, userID, workspaceID)
	membership, _ := args.Get(0).(*entity.Membership)

	return membership, args.Error(1)
}

func (m *mockMembershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	return m.Called(ctx, membership).Error(0)
}

func (m *mockMembershipRepository) Delete(ctx context.Context, userID, workspaceID uuid.UUID) error {
	return m.Called(ctx, userID, workspaceID).Error(0)
}

func (m *mockMembershipRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockMembershipRepository) DeleteByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) error {
	return m.Called(ctx, workspaceID).Error(0)
}

// fakeRepositoryFactory hands the test's repository doubles to transaction
// callbacks.
type fakeRepositoryFactory struct {
	userRepo       repository.UserRepository
	workspaceRepo  repository.WorkspaceRepository
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
}

func (f *fakeRepositoryFactory) UserRepo() repository.UserRepository { return f.userRepo }

func (f *fakeRepositoryFactory) WorkspaceRepo() repository.WorkspaceRepository {
	return f.workspaceRepo
}

func (f *fakeRepositoryFactory) OrganizationRepo() repository.OrganizationRepository {
	return f.orgRepo
}

func (f *fakeRepositoryFactory) MembershipRepo() repository.MembershipRepository {
	return f.membershipRepo
}

// fakeTransactionManager runs the callback immediately against the factory,
// standing in for a real transaction.
type fakeTransactionManager struct {
	factory  *fakeRepositoryFactory
	executed int
}

func (tm *fakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.executed++

	return fn(tm.factory)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *mockPasswordHasher) CheckDummy() {
	m.Called()
}

type mockSecretGenerator struct {
	mock.Mock
}

func (m *mockSecretGenerator) Generate() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}
