// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. Credentials live directly on
// the user: the bcrypt password hash for interactive login, the API key for
// bearer authentication, and the reset token for the out-of-band recovery flow.
type User struct {
	ID                 uuid.UUID // The unique identifier for the user, assigned before the first commit.
	FirstName          string    // Optional given name; empty when not supplied.
	LastName           string    // Optional family name; empty when not supplied.
	Username           string    // Login name, unique across all users.
	Email              string    // Contact email address.
	APIKey             string    // Opaque bearer credential, unique across all users.
	PasswordHash       string    // bcrypt hash of the password. Never holds plaintext.
	PasswordResetToken string    // Opaque recovery token, unique across all users.
	CreatedAt          time.Time // Timestamp of when this user row was inserted.
	UpdatedAt          time.Time // Timestamp of the last modification to this user.
}
