// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the PennyFlow system. Identity is asserted by an
// external provider; email is the unique lookup key and the ID is immutable
// once assigned.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new active User, provisioned on first login.
func NewUser(email, name string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
