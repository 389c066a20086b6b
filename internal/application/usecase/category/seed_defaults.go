// Package category contains category lifecycle use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// SeedDefaultsInput represents the input for default category seeding.
type SeedDefaultsInput struct {
	UserID uuid.UUID
}

// SeedDefaultsUseCase provisions the configured default expense and income
// categories for a user. Upsert semantics make this idempotent, so it runs
// on every login without creating duplicates.
type SeedDefaultsUseCase struct {
	categoryRepo      adapter.CategoryRepository
	expenseCategories []string
	incomeCategories  []string
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance. The
// default lists are injected configuration, not constants.
func NewSeedDefaultsUseCase(categoryRepo adapter.CategoryRepository, expenseCategories, incomeCategories []string) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		categoryRepo:      categoryRepo,
		expenseCategories: expenseCategories,
		incomeCategories:  incomeCategories,
	}
}

// Execute seeds the default categories for the user.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context, input SeedDefaultsInput) error {
	for _, name := range uc.expenseCategories {
		if _, err := uc.categoryRepo.Upsert(ctx, input.UserID, entity.CategoryTypeExpense, name); err != nil {
			return fmt.Errorf("failed to seed expense category %q: %w", name, err)
		}
	}

	for _, name := range uc.incomeCategories {
		if _, err := uc.categoryRepo.Upsert(ctx, input.UserID, entity.CategoryTypeIncome, name); err != nil {
			return fmt.Errorf("failed to seed income category %q: %w", name, err)
		}
	}

	return nil
}
