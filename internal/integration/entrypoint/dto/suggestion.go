package dto

// SuggestCategoryRequest represents the request body for an AI category
// suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required,min=1,max=200"`
}

// SuggestCategoryResponse represents the response for an AI category suggestion.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}
