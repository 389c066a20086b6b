// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for a category. Like
// transactions, the category linkage is by name.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    decimal.Decimal
	Month     string // YYYY-MM
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, amount decimal.Decimal, month string) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
