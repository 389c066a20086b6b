// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	Type      *entity.TransactionType
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryTotal represents the aggregated amount for a single category.
type CategoryTotal struct {
	Category string
	Type     entity.TransactionType
	Total    decimal.Decimal
	Count    int64
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, ordered by date descending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser hard-deletes all transactions owned by the user and
	// returns the number of rows removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// TotalsByCategory aggregates amounts per category for the user within
	// the given date range.
	TotalsByCategory(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*CategoryTotal, error)
}
