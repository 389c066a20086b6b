package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db       *gorm.DB
	sentinel string
}

// NewCategoryRepository creates a new category repository instance. The
// sentinel is the category name reassigned transactions are migrated to; an
// empty string falls back to the default sentinel.
func NewCategoryRepository(db *gorm.DB, sentinel string) adapter.CategoryRepository {
	if sentinel == "" {
		sentinel = entity.SentinelCategory
	}
	return &categoryRepository{
		db:       db,
		sentinel: sentinel,
	}
}

// Upsert inserts the category identified by (userID, type, name) if it does
// not exist yet, or touches its updated_at timestamp if it does. It returns
// the new category's ID on insertion, nil when an existing row matched.
func (r *categoryRepository) Upsert(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType, name string) (*uuid.UUID, error) {
	var createdID *uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CategoryModel
		result := tx.Where("user_id = ? AND type = ? AND name = ?", userID, categoryType, name).
			First(&existing)
		if result.Error == nil {
			return tx.Model(&model.CategoryModel{}).
				Where("id = ?", existing.ID).
				Update("updated_at", time.Now().UTC()).Error
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		category := entity.NewCategory(userID, categoryType, name)
		categoryModel := model.CategoryFromEntity(category)
		if err := tx.Create(categoryModel).Error; err != nil {
			return err
		}
		createdID = &category.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return createdID, nil
}

// FindByUserAndType retrieves the user's categories of the given type,
// most recently created first.
func (r *categoryRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, categoryType).
		Order("created_at DESC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, categoryModel := range categoryModels {
		categories[i] = categoryModel.ToEntity()
	}
	return categories, nil
}

// ExistsByName reports whether the user owns a category with the given name.
// When categoryType is non-nil the check is restricted to that type.
func (r *categoryRepository) ExistsByName(ctx context.Context, userID uuid.UUID, name string, categoryType *entity.CategoryType) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND name = ?", userID, name)
	if categoryType != nil {
		query = query.Where("type = ?", *categoryType)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteSafe deletes the category matching (userID, type, name) after applying
// the chosen strategy to the transactions that reference it by name. The
// linkage is free text, so referencing transactions are matched by name alone
// regardless of their own type. The whole count-mutate-delete sequence runs in
// a single database transaction. It returns the number of transactions counted
// before any mutation. Under StrategyBlock a positive count aborts with
// domainerror.ErrCategoryInUse and nothing is changed. A missing category row
// is not an error: the strategy still applies, which cleans up transactions
// whose category record is already gone.
func (r *categoryRepository) DeleteSafe(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType, name string, strategy entity.DeletionStrategy) (int64, error) {
	var affected int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TransactionModel{}).
			Where("user_id = ? AND category = ?", userID, name).
			Count(&affected).Error; err != nil {
			return err
		}

		switch strategy {
		case entity.StrategyBlock:
			if affected > 0 {
				return domainerror.ErrCategoryInUse
			}
		case entity.StrategyReassign:
			if affected > 0 {
				if err := tx.Model(&model.TransactionModel{}).
					Where("user_id = ? AND category = ?", userID, name).
					Updates(map[string]interface{}{
						"category":   r.sentinel,
						"updated_at": time.Now().UTC(),
					}).Error; err != nil {
					return err
				}
			}
		case entity.StrategyCascade:
			if affected > 0 {
				if err := tx.Where("user_id = ? AND category = ?", userID, name).
					Delete(&model.TransactionModel{}).Error; err != nil {
					return err
				}
			}
		default:
			return domainerror.ErrInvalidStrategy
		}

		return tx.Where("user_id = ? AND type = ? AND name = ?", userID, categoryType, name).
			Delete(&model.CategoryModel{}).Error
	})
	if err != nil {
		return affected, err
	}
	return affected, nil
}

// DeleteByUser removes all of the user's categories and returns how many rows
// were deleted.
func (r *categoryRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
