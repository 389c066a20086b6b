// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "Expense"
	TransactionTypeIncome  TransactionType = "Income"
)

// Transaction represents a single income or expense record. The category
// linkage is a denormalized name string matched against Category.Name, not a
// foreign key to the category's ID.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
	Tags        []string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(userID uuid.UUID, txType TransactionType, category string, amount decimal.Decimal, description string, tags []string, date time.Time) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: description,
		Tags:        tags,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
