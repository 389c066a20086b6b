package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/usecase/category"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	upsertUseCase *category.UpsertCategoryUseCase
	existsUseCase *category.CategoryExistsUseCase
	deleteUseCase *category.DeleteCategorySafeUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	upsertUseCase *category.UpsertCategoryUseCase,
	existsUseCase *category.CategoryExistsUseCase,
	deleteUseCase *category.DeleteCategorySafeUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		upsertUseCase: upsertUseCase,
		existsUseCase: existsUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	categoryType := ctx.DefaultQuery("type", string(entity.CategoryTypeExpense))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		UserID: userID,
		Type:   entity.CategoryType(categoryType),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Upsert handles POST /categories requests. Posting an existing
// (type, name) pair touches the existing category instead of duplicating it.
func (c *CategoryController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpsertCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), category.UpsertCategoryInput{
		UserID: userID,
		Type:   entity.CategoryType(req.Type),
		Name:   req.Name,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	response := dto.UpsertCategoryResponse{Created: output.CategoryID != nil}
	status := http.StatusOK
	if output.CategoryID != nil {
		response.ID = output.CategoryID.String()
		status = http.StatusCreated
	}
	ctx.JSON(status, response)
}

// Exists handles GET /categories/exists requests.
func (c *CategoryController) Exists(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter 'name' is required",
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	input := category.CategoryExistsInput{
		UserID: userID,
		Name:   name,
	}
	if categoryType := ctx.Query("type"); categoryType != "" {
		catType := entity.CategoryType(categoryType)
		input.Type = &catType
	}

	output, err := c.existsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to check category",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryExistsResponse{Exists: output.Exists})
}

// Delete handles DELETE /categories requests. The category is addressed by
// its (type, name) pair; the strategy query parameter picks how referencing
// transactions are handled and defaults to block.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	name := ctx.Query("name")
	categoryType := ctx.Query("type")
	if name == "" || categoryType == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameters 'type' and 'name' are required",
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}
	strategy := ctx.DefaultQuery("strategy", string(entity.StrategyBlock))

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategorySafeInput{
		UserID:   userID,
		Type:     entity.CategoryType(categoryType),
		Name:     name,
		Strategy: entity.DeletionStrategy(strategy),
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteCategoryResponse{
		Deleted:              true,
		AffectedTransactions: output.AffectedTransactions,
	})
}

// handleCategoryError maps category errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		switch categoryErr.Code {
		case domainerror.ErrCodeMissingCategoryFields, domainerror.ErrCodeInvalidStrategy:
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: categoryErr.Message,
				Code:  string(categoryErr.Code),
			})
			return
		case domainerror.ErrCodeCategoryInUse:
			ctx.JSON(http.StatusConflict, dto.CategoryInUseResponse{
				Error:                categoryErr.Message,
				Code:                 string(categoryErr.Code),
				AffectedTransactions: categoryErr.AffectedCount,
			})
			return
		}
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Category operation failed",
	})
}
