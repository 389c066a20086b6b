// Package suggestion contains AI category suggestion use cases.
package suggestion

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	UserID      uuid.UUID
	Description string
}

// SuggestCategoryOutput represents the output of a category suggestion.
type SuggestCategoryOutput struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase asks the AI service to pick the best-fitting
// category for a transaction description from the user's own expense
// categories.
type SuggestCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	aiService    adapter.CategorySuggestionService
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(categoryRepo adapter.CategoryRepository, aiService adapter.CategorySuggestionService) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		categoryRepo: categoryRepo,
		aiService:    aiService,
	}
}

// Execute performs the suggestion.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if !uc.aiService.IsAvailable() {
		return nil, fmt.Errorf("ai suggestion service is not configured")
	}

	categories, err := uc.categoryRepo.FindByUserAndType(ctx, input.UserID, entity.CategoryTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	result, err := uc.aiService.Suggest(ctx, &adapter.CategorySuggestionRequest{
		Description: input.Description,
		Categories:  names,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}

	return &SuggestCategoryOutput{
		Category:   result.Category,
		Confidence: result.Confidence,
		Reasoning:  result.Reasoning,
	}, nil
}
