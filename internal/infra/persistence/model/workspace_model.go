package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceModel mirrors the 'workspaces' table.
type WorkspaceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Memberships []MembershipModel `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WorkspaceModel) TableName() string {
	return "workspaces"
}

// BeforeCreate assigns the primary key before the first commit if unset.
func (m *WorkspaceModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
