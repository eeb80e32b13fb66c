// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	workspaceRepo  repository.WorkspaceRepository
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
	hasher         service.PasswordHasher
	secrets        service.SecretGenerator
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	WorkspaceRepo  repository.WorkspaceRepository
	OrgRepo        repository.OrganizationRepository
	MembershipRepo repository.MembershipRepository
	Hasher         service.PasswordHasher
	Secrets        service.SecretGenerator
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		workspaceRepo:  params.WorkspaceRepo,
		orgRepo:        params.OrgRepo,
		membershipRepo: params.MembershipRepo,
		hasher:         params.Hasher,
		secrets:        params.Secrets,
		logger:         params.Logger,
	}
}

// --- Users ---

func (srv *accountService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.userRepo.FindByID(ctx, id)
}

func (srv *accountService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return srv.userRepo.FindByUsername(ctx, username)
}

func (srv *accountService) GetUserByAPIKey(ctx context.Context, apiKey string) (*entity.User, error) {
	return srv.userRepo.FindByAPIKey(ctx, apiKey)
}

func (srv *accountService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return srv.userRepo.List(ctx)
}

// CreateUser hashes the password and generates the user's credential material
// before persisting. The stored row never sees the plaintext password.
func (srv *accountService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.logger.Debug("Creating user", slog.String("username", input.Username))

	// Hash outside the insert path (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during user creation", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	apiKey, err := srv.secrets.Generate()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSecretGenerationFailed, "failed to generate api key")
	}

	resetToken, err := srv.secrets.Generate()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSecretGenerationFailed, "failed to generate reset token")
	}

	user := &entity.User{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Username:           input.Username,
		Email:              input.Email,
		APIKey:             apiKey,
		PasswordHash:       passwordHash,
		PasswordResetToken: resetToken,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User created", slog.Any("userID", user.ID), slog.String("username", user.Username))

	return user, nil
}

// DeleteUser removes the user's membership rows and the user itself in one
// transaction, so the cascade does not depend on the store honouring FK
// cascade rules. The detached record is returned.
func (srv *accountService) DeleteUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MembershipRepo().DeleteByUserID(ctx, user.ID); err != nil {
			return err
		}

		return repoFactory.UserRepo().Delete(ctx, user.ID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("User deleted", slog.Any("userID", user.ID))

	return user, nil
}

// --- Workspaces ---

func (srv *accountService) GetWorkspaceByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	return srv.workspaceRepo.FindByID(ctx, id)
}

func (srv *accountService) ListWorkspaces(ctx context.Context) ([]*entity.Workspace, error) {
	return srv.workspaceRepo.List(ctx)
}

func (srv *accountService) CreateWorkspace(ctx context.Context, input *usecase.CreateWorkspaceInput) (*entity.Workspace, error) {
	workspace := &entity.Workspace{Name: input.Name}

	if err := srv.workspaceRepo.Create(ctx, workspace); err != nil {
		return nil, errors.Wrap(err, "failed to create workspace")
	}

	srv.logger.Info("Workspace created", slog.Any("workspaceID", workspace.ID), slog.String("name", workspace.Name))

	return workspace, nil
}

// DeleteWorkspace removes the workspace's membership rows and the workspace
// itself in one transaction. The detached record is returned.
func (srv *accountService) DeleteWorkspace(ctx context.Context, workspace *entity.Workspace) (*entity.Workspace, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MembershipRepo().DeleteByWorkspaceID(ctx, workspace.ID); err != nil {
			return err
		}

		return repoFactory.WorkspaceRepo().Delete(ctx, workspace.ID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete workspace")
	}

	srv.logger.Info("Workspace deleted", slog.Any("workspaceID", workspace.ID))

	return workspace, nil
}

// --- Organizations ---

func (srv *accountService) GetOrganizationByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	return srv.orgRepo.FindByID(ctx, id)
}

func (srv *accountService) ListOrganizations(ctx context.Context) ([]*entity.Organization, error) {
	return srv.orgRepo.List(ctx)
}

func (srv *accountService) CreateOrganization(ctx context.Context, input *usecase.CreateOrganizationInput) (*entity.Organization, error) {
	organization := &entity.Organization{Name: input.Name}

	if err := srv.orgRepo.Create(ctx, organization); err != nil {
		return nil, errors.Wrap(err, "failed to create organization")
	}

	return organization, nil
}

func (srv *accountService) DeleteOrganization(ctx context.Context, organization *entity.Organization) (*entity.Organization, error) {
	if err := srv.orgRepo.Delete(ctx, organization.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete organization")
	}

	return organization, nil
}

// --- Memberships ---

func (srv *accountService) GetMembership(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Membership, error) {
	return srv.membershipRepo.FindByUserAndWorkspace(ctx, userID, workspaceID)
}

// CreateMembership persists the join row. The store's constraints decide the
// outcome: a duplicate pair fails as already-exists, an unknown user or
// workspace as a referential-integrity violation.
func (srv *accountService) CreateMembership(ctx context.Context, input *usecase.CreateMembershipInput) (*entity.Membership, error) {
	membership := &entity.Membership{
		UserID:      input.UserID,
		WorkspaceID: input.WorkspaceID,
	}

	if err := srv.membershipRepo.Create(ctx, membership); err != nil {
		return nil, errors.Wrap(err, "failed to create membership")
	}

	srv.logger.Info("Membership created",
		slog.Any("userID", membership.UserID),
		slog.Any("workspaceID", membership.WorkspaceID),
	)

	return membership, nil
}

func (srv *accountService) DeleteMembership(ctx context.Context, membership *entity.Membership) (*entity.Membership, error) {
	if err := srv.membershipRepo.Delete(ctx, membership.UserID, membership.WorkspaceID); err != nil {
		return nil, errors.Wrap(err, "failed to delete membership")
	}

	return membership, nil
}
