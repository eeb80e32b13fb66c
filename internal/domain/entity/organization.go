package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a tenant-level grouping. It is provisioned by an external
// path and immutable here.
type Organization struct {
	ID        uuid.UUID // The unique identifier for the organization.
	Name      string    // Organization display name.
	CreatedAt time.Time // Timestamp of when this organization was inserted.
	UpdatedAt time.Time // Timestamp of the last modification.
}
