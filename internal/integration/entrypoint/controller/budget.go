package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/usecase/budget"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	upsertUseCase *budget.UpsertBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	upsertUseCase *budget.UpsertBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		upsertUseCase: upsertUseCase,
		listUseCase:   listUseCase,
	}
}

// Upsert handles PUT /budgets requests. A budget is keyed on
// (category, month); repeat writes update the amount in place.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), budget.UpsertBudgetInput{
		UserID:   userID,
		Category: req.Category,
		Amount:   req.Amount,
		Month:    req.Month,
	})
	if err != nil {
		var budgetErr *domainerror.BudgetError
		if errors.As(err, &budgetErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: budgetErr.Message,
				Code:  string(budgetErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to save budget",
		})
		return
	}

	response := dto.UpsertBudgetResponse{Created: output.BudgetID != nil}
	status := http.StatusOK
	if output.BudgetID != nil {
		response.ID = output.BudgetID.String()
		status = http.StatusCreated
	}
	ctx.JSON(status, response)
}

// List handles GET /budgets requests. The month query parameter defaults to
// the current month.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	month := ctx.DefaultQuery("month", time.Now().UTC().Format("2006-01"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budgets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}
