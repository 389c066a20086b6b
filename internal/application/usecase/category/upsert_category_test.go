// Package category contains category lifecycle use cases.
package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

func TestUpsertCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("new triple creates a category and returns its ID", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewUpsertCategoryUseCase(repo)

		output, err := uc.Execute(ctx, UpsertCategoryInput{
			UserID: userID,
			Type:   entity.CategoryTypeExpense,
			Name:   "Groceries",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CategoryID == nil {
			t.Fatal("expected a category ID for a fresh insert")
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected 1 stored category, got %d", len(repo.categories))
		}
	})

	t.Run("matching triple touches in place and returns nil ID", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewUpsertCategoryUseCase(repo)
		input := UpsertCategoryInput{UserID: userID, Type: entity.CategoryTypeExpense, Name: "Groceries"}

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.CategoryID != nil {
			t.Error("expected nil ID when an existing category matched")
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected no duplicate, got %d categories", len(repo.categories))
		}
	})

	t.Run("same name under a different type is a distinct category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewUpsertCategoryUseCase(repo)

		first, err := uc.Execute(ctx, UpsertCategoryInput{UserID: userID, Type: entity.CategoryTypeExpense, Name: "Others"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, UpsertCategoryInput{UserID: userID, Type: entity.CategoryTypeIncome, Name: "Others"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.CategoryID == nil || second.CategoryID == nil {
			t.Fatal("expected both upserts to insert")
		}
		if *first.CategoryID == *second.CategoryID {
			t.Error("expected distinct categories per type")
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewUpsertCategoryUseCase(repo)

		_, err := uc.Execute(ctx, UpsertCategoryInput{UserID: userID, Type: entity.CategoryTypeExpense, Name: "   "})
		if err == nil {
			t.Fatal("expected an error for a blank name")
		}

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) {
			t.Fatalf("expected a CategoryError, got %T", err)
		}
		if catErr.Code != domainerror.ErrCodeMissingCategoryFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingCategoryFields, catErr.Code)
		}
		if repo.upsertCalls != 0 {
			t.Error("expected the repository to be untouched")
		}
	})

	t.Run("blank type is rejected", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewUpsertCategoryUseCase(repo)

		_, err := uc.Execute(ctx, UpsertCategoryInput{UserID: userID, Type: "", Name: "Groceries"})
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeMissingCategoryFields {
			t.Fatalf("expected CAT missing-fields error, got %v", err)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		repo.upsertErr = errors.New("constraint violation")
		uc := NewUpsertCategoryUseCase(repo)

		_, err := uc.Execute(ctx, UpsertCategoryInput{UserID: userID, Type: entity.CategoryTypeExpense, Name: "Groceries"})
		if err == nil {
			t.Fatal("expected the repository error to surface")
		}
	})
}

func TestCategoryExistsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeCategoryRepo()
	if _, err := repo.Upsert(ctx, userID, entity.CategoryTypeExpense, "Food"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := NewCategoryExistsUseCase(repo)

	t.Run("reports true for a seeded name", func(t *testing.T) {
		output, err := uc.Execute(ctx, CategoryExistsInput{UserID: userID, Name: "Food"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Exists {
			t.Error("expected Food to exist")
		}
	})

	t.Run("type filter narrows the check", func(t *testing.T) {
		income := entity.CategoryTypeIncome
		output, err := uc.Execute(ctx, CategoryExistsInput{UserID: userID, Name: "Food", Type: &income})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Exists {
			t.Error("expected Food to be absent among income categories")
		}
	})

	t.Run("another user's category does not leak", func(t *testing.T) {
		output, err := uc.Execute(ctx, CategoryExistsInput{UserID: uuid.New(), Name: "Food"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Exists {
			t.Error("expected no match for a different user")
		}
	})
}
