// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Deactivate flips the active flag to false for the given user.
	// It returns whether the record was actually modified.
	Deactivate(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteByID hard-deletes the user record and returns the number of rows removed.
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}
