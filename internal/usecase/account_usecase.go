// Package usecase defines the application-facing interfaces of the account
// layer and their input types. Callers supply already-validated inputs; this
// layer owns orchestration, hashing and transaction scoping.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput carries the validated fields for user creation. The password
// arrives as plaintext and is hashed before anything is persisted.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// CreateWorkspaceInput carries the validated fields for workspace creation.
type CreateWorkspaceInput struct {
	Name string
}

// CreateOrganizationInput carries the validated fields for organization creation.
type CreateOrganizationInput struct {
	Name string
}

// CreateMembershipInput identifies the user and workspace to join. Both rows
// must already exist.
type CreateMembershipInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
}

// AccountUsecase exposes the account data-access operations. Lookups return
// domain not-found errors rather than nil-without-error; deletes return the
// removed (now detached) record.
type AccountUsecase interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetUserByAPIKey(ctx context.Context, apiKey string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, user *entity.User) (*entity.User, error)

	GetWorkspaceByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]*entity.Workspace, error)
	CreateWorkspace(ctx context.Context, input *CreateWorkspaceInput) (*entity.Workspace, error)
	DeleteWorkspace(ctx context.Context, workspace *entity.Workspace) (*entity.Workspace, error)

	GetOrganizationByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)
	ListOrganizations(ctx context.Context) ([]*entity.Organization, error)
	CreateOrganization(ctx context.Context, input *CreateOrganizationInput) (*entity.Organization, error)
	DeleteOrganization(ctx context.Context, organization *entity.Organization) (*entity.Organization, error)

	GetMembership(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Membership, error)
	CreateMembership(ctx context.Context, input *CreateMembershipInput) (*entity.Membership, error)
	DeleteMembership(ctx context.Context, membership *entity.Membership) (*entity.Membership, error)
}
