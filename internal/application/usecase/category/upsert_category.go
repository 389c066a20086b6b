// Package category contains category lifecycle use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// UpsertCategoryInput represents the input for category upsert.
type UpsertCategoryInput struct {
	UserID uuid.UUID
	Type   entity.CategoryType
	Name   string
}

// UpsertCategoryOutput represents the output of category upsert.
// CategoryID is nil when an existing category matched the triple and only
// its last-modified timestamp was touched.
type UpsertCategoryOutput struct {
	CategoryID *uuid.UUID
}

// UpsertCategoryUseCase handles category creation keyed on the natural
// (user, type, name) triple. The type is deliberately not validated against
// the fixed enumeration: callers supplying an ad hoc type get an ad hoc
// category, favoring flexibility over strictness.
type UpsertCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpsertCategoryUseCase creates a new UpsertCategoryUseCase instance.
func NewUpsertCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpsertCategoryUseCase {
	return &UpsertCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category upsert.
func (uc *UpsertCategoryUseCase) Execute(ctx context.Context, input UpsertCategoryInput) (*UpsertCategoryOutput, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(string(input.Type)) == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category type and name are required",
			nil,
		)
	}

	id, err := uc.categoryRepo.Upsert(ctx, input.UserID, input.Type, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert category: %w", err)
	}

	return &UpsertCategoryOutput{CategoryID: id}, nil
}
