package dto

import (
	"time"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// UpsertCategoryRequest represents the request body for category upsert.
type UpsertCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Type string `json:"type" binding:"required"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// UpsertCategoryResponse represents the response for a category upsert.
// ID is empty when an existing category matched and was only touched.
type UpsertCategoryResponse struct {
	ID      string `json:"id,omitempty"`
	Created bool   `json:"created"`
}

// DeleteCategoryResponse represents the response for a safe category deletion.
type DeleteCategoryResponse struct {
	Deleted              bool  `json:"deleted"`
	AffectedTransactions int64 `json:"affected_transactions"`
}

// CategoryInUseResponse represents the refusal of a blocked deletion,
// carrying the number of transactions that would be affected.
type CategoryInUseResponse struct {
	Error                string `json:"error"`
	Code                 string `json:"code"`
	AffectedTransactions int64  `json:"affected_transactions"`
}

// CategoryExistsResponse represents the response for a category existence check.
type CategoryExistsResponse struct {
	Exists bool `json:"exists"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryListResponse converts a slice of Category entities to a list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{Categories: responses}
}
