// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// The category column holds a denormalized category name, not a foreign key.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Date        time.Time       `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.TransactionType(m.Type),
		Category:    m.Category,
		Amount:      m.Amount,
		Description: m.Description,
		Tags:        []string(m.Tags),
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(tx *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        string(tx.Type),
		Category:    tx.Category,
		Amount:      tx.Amount,
		Description: tx.Description,
		Tags:        pq.StringArray(tx.Tags),
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}
