// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// fakeBudgetRepo is an in-memory adapter.BudgetRepository with real upsert
// semantics, keyed on (user, category, month).
type fakeBudgetRepo struct {
	budgets   map[string]*entity.Budget
	upsertErr error
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[string]*entity.Budget)}
}

func budgetKey(userID uuid.UUID, category, month string) string {
	return fmt.Sprintf("%s|%s|%s", userID, category, month)
}

func (r *fakeBudgetRepo) Upsert(_ context.Context, userID uuid.UUID, category string, amount decimal.Decimal, month string) (*uuid.UUID, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}

	key := budgetKey(userID, category, month)
	if existing, ok := r.budgets[key]; ok {
		existing.Amount = amount
		existing.UpdatedAt = time.Now().UTC()
		return nil, nil
	}

	budget := entity.NewBudget(userID, category, amount, month)
	r.budgets[key] = budget
	id := budget.ID
	return &id, nil
}

func (r *fakeBudgetRepo) FindByUserAndMonth(_ context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	var result []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && b.Month == month {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBudgetRepo) DeleteByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var removed int64
	for key, b := range r.budgets {
		if b.UserID == userID {
			delete(r.budgets, key)
			removed++
		}
	}
	return removed, nil
}

func TestUpsertBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("new key creates a budget and returns its ID", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpsertBudgetUseCase(repo)

		output, err := uc.Execute(ctx, UpsertBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.NewFromInt(500),
			Month:    "2026-03",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.BudgetID == nil {
			t.Fatal("expected a budget ID for a fresh insert")
		}
	})

	t.Run("matching key updates the amount in place", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpsertBudgetUseCase(repo)
		input := UpsertBudgetInput{UserID: userID, Category: "Food", Amount: decimal.NewFromInt(500), Month: "2026-03"}

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input.Amount = decimal.NewFromInt(650)
		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.BudgetID != nil {
			t.Error("expected nil ID when an existing budget matched")
		}
		if len(repo.budgets) != 1 {
			t.Errorf("expected no duplicate, got %d budgets", len(repo.budgets))
		}
		stored := repo.budgets[budgetKey(userID, "Food", "2026-03")]
		if !stored.Amount.Equal(decimal.NewFromInt(650)) {
			t.Errorf("expected amount 650, got %s", stored.Amount)
		}
	})

	t.Run("malformed months are rejected", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpsertBudgetUseCase(repo)

		for _, month := range []string{"2026-13", "2026-0", "202603", "March 2026", "2026-3", ""} {
			_, err := uc.Execute(ctx, UpsertBudgetInput{
				UserID:   userID,
				Category: "Food",
				Amount:   decimal.NewFromInt(100),
				Month:    month,
			})
			if err == nil {
				t.Errorf("month %q: expected an error", month)
				continue
			}

			var budgetErr *domainerror.BudgetError
			if !errors.As(err, &budgetErr) {
				t.Errorf("month %q: expected a BudgetError, got %T", month, err)
				continue
			}
			if budgetErr.Code != domainerror.ErrCodeInvalidMonth {
				t.Errorf("month %q: expected code %s, got %s", month, domainerror.ErrCodeInvalidMonth, budgetErr.Code)
			}
		}
		if len(repo.budgets) != 0 {
			t.Error("expected nothing to be persisted")
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpsertBudgetUseCase(repo)

		_, err := uc.Execute(ctx, UpsertBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.NewFromInt(-100),
			Month:    "2026-03",
		})
		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeInvalidBudgetAmount {
			t.Fatalf("expected invalid-amount BudgetError, got %v", err)
		}
	})
}

func TestListBudgetsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeBudgetRepo()
	for _, category := range []string{"Food", "Rent"} {
		if _, err := repo.Upsert(ctx, userID, category, decimal.NewFromInt(100), "2026-03"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if _, err := repo.Upsert(ctx, userID, "Food", decimal.NewFromInt(100), "2026-04"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	uc := NewListBudgetsUseCase(repo)

	t.Run("returns only the requested month", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListBudgetsInput{UserID: userID, Month: "2026-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Budgets) != 2 {
			t.Errorf("expected 2 budgets for 2026-03, got %d", len(output.Budgets))
		}
	})

	t.Run("empty month yields an empty list", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListBudgetsInput{UserID: userID, Month: "2027-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Budgets) != 0 {
			t.Errorf("expected no budgets, got %d", len(output.Budgets))
		}
	})
}
