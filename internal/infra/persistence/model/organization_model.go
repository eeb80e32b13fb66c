package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationModel mirrors the 'organizations' table.
type OrganizationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}

// BeforeCreate assigns the primary key before the first commit if unset.
func (m *OrganizationModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
