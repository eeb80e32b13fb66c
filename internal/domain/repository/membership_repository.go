package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMembershipNotFound is returned when a membership lookup finds no row.
var ErrMembershipNotFound = errors.New("membership not found")

// MembershipRepository defines the standard operations for user-workspace membership persistence.
type MembershipRepository interface {
	// FindByUserAndWorkspace retrieves the membership row for the given pair.
	// The composite key guarantees at most one row.
	FindByUserAndWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Membership, error)

	// Create persists a new membership row. Both referenced rows must exist.
	Create(ctx context.Context, membership *entity.Membership) error

	// Delete removes the membership row for the given pair.
	Delete(ctx context.Context, userID, workspaceID uuid.UUID) error

	// DeleteByUserID removes every membership row referencing the user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteByWorkspaceID removes every membership row referencing the workspace.
	DeleteByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) error
}
