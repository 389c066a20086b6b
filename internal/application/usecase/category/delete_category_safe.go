// Package category contains category lifecycle use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// DeleteCategorySafeInput represents the input for safe category deletion.
type DeleteCategorySafeInput struct {
	UserID   uuid.UUID
	Type     entity.CategoryType
	Name     string
	Strategy entity.DeletionStrategy
}

// DeleteCategorySafeOutput represents the output of safe category deletion.
// AffectedTransactions is the count taken before any mutation, whichever
// strategy ran.
type DeleteCategorySafeOutput struct {
	AffectedTransactions int64
}

// DeleteCategorySafeUseCase deletes a category while reconciling the
// transactions that reference it by name:
//
//   - block:    refuse when referencing transactions exist, carrying the count
//   - reassign: rewrite referencing transactions to the sentinel category
//   - cascade:  delete referencing transactions outright
//
// An unrecognized strategy fails fast with InvalidStrategy before anything is
// touched. Count, transaction mutation and category deletion run inside a
// single storage transaction.
type DeleteCategorySafeUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategorySafeUseCase creates a new DeleteCategorySafeUseCase instance.
func NewDeleteCategorySafeUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategorySafeUseCase {
	return &DeleteCategorySafeUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the safe deletion.
func (uc *DeleteCategorySafeUseCase) Execute(ctx context.Context, input DeleteCategorySafeInput) (*DeleteCategorySafeOutput, error) {
	if !input.Strategy.Valid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidStrategy,
			fmt.Sprintf("unrecognized deletion strategy %q", input.Strategy),
			domainerror.ErrInvalidStrategy,
		)
	}

	affected, err := uc.categoryRepo.DeleteSafe(ctx, input.UserID, input.Type, input.Name, input.Strategy)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryInUse) {
			return nil, domainerror.NewCategoryInUseError(
				fmt.Sprintf("%d transactions will be affected", affected),
				affected,
			)
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategorySafeOutput{AffectedTransactions: affected}, nil
}
