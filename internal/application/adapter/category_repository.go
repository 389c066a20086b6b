// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Upsert updates-or-inserts the category keyed by (UserID, Type, Name).
	// On match only the updated_at timestamp is touched and nil is returned;
	// on insert the new category ID is returned.
	Upsert(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType, name string) (*uuid.UUID, error)

	// FindByUserAndType retrieves the user's categories of the given type,
	// ordered by creation timestamp descending (display order).
	FindByUserAndType(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error)

	// ExistsByName checks whether at least one category with the given name
	// (and type, when non-nil) exists for the user.
	ExistsByName(ctx context.Context, userID uuid.UUID, name string, categoryType *entity.CategoryType) (bool, error)

	// DeleteSafe atomically applies the deletion strategy to the transactions
	// referencing the category by name and then deletes the category row
	// matching (UserID, Type, Name). It returns the number of transactions
	// counted before any mutation. When the strategy is StrategyBlock and the
	// count is positive, it returns the count together with
	// domainerror.ErrCategoryInUse and performs no mutation.
	DeleteSafe(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType, name string, strategy entity.DeletionStrategy) (int64, error)

	// DeleteByUser hard-deletes all categories owned by the user and returns
	// the number of rows removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
