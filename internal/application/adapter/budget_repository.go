// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Upsert updates-or-inserts the budget keyed by (UserID, Category, Month).
	Upsert(ctx context.Context, userID uuid.UUID, category string, amount decimal.Decimal, month string) (*uuid.UUID, error)

	// FindByUserAndMonth retrieves the user's budgets for the given month.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error)

	// DeleteByUser hard-deletes all budgets owned by the user and returns the
	// number of rows removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
