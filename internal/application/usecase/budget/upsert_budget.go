// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/application/adapter"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// UpsertBudgetInput represents the input for budget upsert.
type UpsertBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal
	Month    string // YYYY-MM
}

// UpsertBudgetOutput represents the output of budget upsert.
// BudgetID is nil when an existing budget matched and was updated in place.
type UpsertBudgetOutput struct {
	BudgetID *uuid.UUID
}

// UpsertBudgetUseCase sets a monthly spending limit for a category, keyed on
// (user, category, month).
type UpsertBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget upsert.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	if !monthPattern.MatchString(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("invalid month %q, expected YYYY-MM", input.Month),
			domainerror.ErrInvalidMonth,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	id, err := uc.budgetRepo.Upsert(ctx, input.UserID, input.Category, input.Amount, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	return &UpsertBudgetOutput{BudgetID: id}, nil
}
