// Package category contains category lifecycle use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// CategoryExistsInput represents the input for the existence check.
// Type is optional; when nil the check matches any type.
type CategoryExistsInput struct {
	UserID uuid.UUID
	Name   string
	Type   *entity.CategoryType
}

// CategoryExistsOutput represents the output of the existence check.
type CategoryExistsOutput struct {
	Exists bool
}

// CategoryExistsUseCase checks whether a category name is taken for a user.
type CategoryExistsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCategoryExistsUseCase creates a new CategoryExistsUseCase instance.
func NewCategoryExistsUseCase(categoryRepo adapter.CategoryRepository) *CategoryExistsUseCase {
	return &CategoryExistsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the existence check.
func (uc *CategoryExistsUseCase) Execute(ctx context.Context, input CategoryExistsInput) (*CategoryExistsOutput, error) {
	exists, err := uc.categoryRepo.ExistsByName(ctx, input.UserID, input.Name, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to check category existence: %w", err)
	}

	return &CategoryExistsOutput{Exists: exists}, nil
}
