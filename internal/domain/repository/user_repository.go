// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	// Usernames are unique, so at most one row can match.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByAPIKey retrieves a single user by their bearer API key.
	FindByAPIKey(ctx context.Context, apiKey string) (*entity.User, error)

	// List returns all users ordered by insertion time ascending.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity and fills in server-assigned fields.
	Create(ctx context.Context, user *entity.User) error

	// Delete removes a user row. Membership rows referencing the user are
	// removed by the store's cascade rules.
	Delete(ctx context.Context, id uuid.UUID) error
}
