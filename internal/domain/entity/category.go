// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "Expense"
	CategoryTypeIncome  CategoryType = "Income"
)

// SentinelCategory is the placeholder category that transactions are moved to
// when their category is deleted with the reassign strategy.
const SentinelCategory = "Others"

// DeletionStrategy governs how transactions referencing a category are
// handled when that category is deleted.
type DeletionStrategy string

const (
	// StrategyReassign rewrites referencing transactions to SentinelCategory.
	StrategyReassign DeletionStrategy = "reassign"
	// StrategyCascade deletes referencing transactions outright.
	StrategyCascade DeletionStrategy = "cascade"
	// StrategyBlock refuses the deletion while referencing transactions exist.
	StrategyBlock DeletionStrategy = "block"
)

// Valid reports whether the strategy is one of the recognized tokens.
func (s DeletionStrategy) Valid() bool {
	switch s {
	case StrategyReassign, StrategyCascade, StrategyBlock:
		return true
	}
	return false
}

// Category represents a transaction category owned by exactly one user.
// The natural key is the (UserID, Type, Name) triple; upsert matches on the
// triple rather than on the surrogate ID.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      CategoryType
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, categoryType CategoryType, name string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      categoryType,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
