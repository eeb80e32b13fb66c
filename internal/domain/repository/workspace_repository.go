package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for workspace and organization persistence.
var (
	// ErrWorkspaceNotFound is returned when a workspace lookup finds no row.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrOrganizationNotFound is returned when an organization lookup finds no row.
	ErrOrganizationNotFound = errors.New("organization not found")
)

// WorkspaceRepository defines the standard operations for workspace persistence.
type WorkspaceRepository interface {
	// FindByID retrieves a single workspace by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error)

	// List returns all workspaces ordered by insertion time ascending.
	List(ctx context.Context) ([]*entity.Workspace, error)

	// Create persists a new workspace entity and fills in server-assigned fields.
	Create(ctx context.Context, workspace *entity.Workspace) error

	// Delete removes a workspace row. Membership rows referencing the
	// workspace are removed by the store's cascade rules.
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrganizationRepository defines the standard operations for organization persistence.
type OrganizationRepository interface {
	// FindByID retrieves a single organization by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)

	// List returns all organizations ordered by insertion time ascending.
	List(ctx context.Context) ([]*entity.Organization, error)

	// Create persists a new organization entity and fills in server-assigned fields.
	Create(ctx context.Context, organization *entity.Organization) error

	// Delete removes an organization row.
	Delete(ctx context.Context, id uuid.UUID) error
}
