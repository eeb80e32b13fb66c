package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel mirrors the 'users_workspaces' join table. The composite
// primary key enforces at most one row per (user, workspace) pair.
type MembershipModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "users_workspaces"
}
