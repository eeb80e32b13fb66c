package entity

import (
	"time"

	"github.com/google/uuid"
)

// Membership grants one user access to one workspace. Its identity is the
// (UserID, WorkspaceID) pair; at most one row exists per pair.
type Membership struct {
	UserID      uuid.UUID // References an existing user.
	WorkspaceID uuid.UUID // References an existing workspace.
	CreatedAt   time.Time // Timestamp of when the membership was granted.
}
