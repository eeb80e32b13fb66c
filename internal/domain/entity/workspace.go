package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is a shared working area users gain access to through Membership
// rows. Neither side owns the other; the membership row is the sole owner of
// the relationship.
type Workspace struct {
	ID        uuid.UUID // The unique identifier for the workspace.
	Name      string    // Workspace name, unique across the system.
	CreatedAt time.Time // Timestamp of when this workspace was inserted.
	UpdatedAt time.Time // Timestamp of the last modification.
}
