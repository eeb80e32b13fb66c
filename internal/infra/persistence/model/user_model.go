// Package model contains the GORM persistence models mirroring the database
// tables. Models are driver-agnostic: primary keys are generated client-side
// in BeforeCreate hooks so the same definitions work on PostgreSQL and on the
// SQLite database used in tests.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. Username, api_key and
// password_reset_token all carry unique indexes; authentication depends on
// username being a unique lookup key.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName          string    `gorm:"type:varchar(255)"`
	LastName           string    `gorm:"type:varchar(255)"`
	Username           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email              string    `gorm:"type:varchar(255);not null"`
	APIKey             string    `gorm:"type:text;uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:text;not null"`
	PasswordResetToken string    `gorm:"type:text;uniqueIndex;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Memberships []MembershipModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key before the first commit if unset.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
