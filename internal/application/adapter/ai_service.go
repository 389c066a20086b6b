// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CategorySuggestionRequest represents a request to suggest a category for a
// transaction description.
type CategorySuggestionRequest struct {
	Description string
	Categories  []string
}

// CategorySuggestionResult represents the AI's category suggestion.
type CategorySuggestionResult struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// CategorySuggestionService defines the interface for AI category suggestions.
type CategorySuggestionService interface {
	// Suggest picks the best-fitting category for the description from the
	// supplied category list.
	Suggest(ctx context.Context, request *CategorySuggestionRequest) (*CategorySuggestionResult, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
