package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	"github.com/pennyflow/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert inserts the budget keyed by (userID, category, month) or updates the
// amount of the existing row. It returns the new budget's ID on insertion,
// nil when an existing row was updated.
func (r *budgetRepository) Upsert(ctx context.Context, userID uuid.UUID, category string, amount decimal.Decimal, month string) (*uuid.UUID, error) {
	var createdID *uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.BudgetModel
		result := tx.Where("user_id = ? AND category = ? AND month = ?", userID, category, month).
			First(&existing)
		if result.Error == nil {
			return tx.Model(&model.BudgetModel{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"amount":     amount,
					"updated_at": time.Now().UTC(),
				}).Error
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		budget := entity.NewBudget(userID, category, amount, month)
		budgetModel := model.BudgetFromEntity(budget)
		if err := tx.Create(budgetModel).Error; err != nil {
			return err
		}
		createdID = &budget.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return createdID, nil
}

// FindByUserAndMonth retrieves the user's budgets for the given month.
func (r *budgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("category ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, budgetModel := range budgetModels {
		budgets[i] = budgetModel.ToEntity()
	}
	return budgets, nil
}

// DeleteByUser removes all of the user's budgets and returns the count.
func (r *budgetRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.BudgetModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
