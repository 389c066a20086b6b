package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/usecase/suggestion"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
)

// SuggestionController handles AI category suggestion endpoints.
type SuggestionController struct {
	suggestUseCase *suggestion.SuggestCategoryUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(suggestUseCase *suggestion.SuggestCategoryUseCase) *SuggestionController {
	return &SuggestionController{
		suggestUseCase: suggestUseCase,
	}
}

// Suggest handles POST /categories/suggest requests.
func (c *SuggestionController) Suggest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), suggestion.SuggestCategoryInput{
		UserID:      userID,
		Description: req.Description,
	})
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Category suggestion is unavailable",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   output.Category,
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
	})
}
