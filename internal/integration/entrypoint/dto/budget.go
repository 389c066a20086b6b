package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a monthly budget.
type UpsertBudgetRequest struct {
	Category string          `json:"category" binding:"required,min=1,max=50"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Month    string          `json:"month" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Month     string          `json:"month"`
	CreatedAt time.Time       `json:"created_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// UpsertBudgetResponse represents the response for a budget upsert.
type UpsertBudgetResponse struct {
	ID      string `json:"id,omitempty"`
	Created bool   `json:"created"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Category:  budget.Category,
		Amount:    budget.Amount,
		Month:     budget.Month,
		CreatedAt: budget.CreatedAt,
	}
}

// ToBudgetListResponse converts a slice of Budget entities to a list response.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ToBudgetResponse(budget)
	}
	return BudgetListResponse{Budgets: responses}
}
