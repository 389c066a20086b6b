package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required"`
	Category    string          `json:"category" binding:"required,min=1,max=50"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Date        time.Time       `json:"date" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a response DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	tags := transaction.Tags
	if tags == nil {
		tags = []string{}
	}
	return TransactionResponse{
		ID:          transaction.ID.String(),
		Type:        string(transaction.Type),
		Category:    transaction.Category,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Tags:        tags,
		Date:        transaction.Date,
		CreatedAt:   transaction.CreatedAt,
	}
}

// ToTransactionListResponse converts a slice of Transaction entities to a list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction)
	}
	return TransactionListResponse{Transactions: responses}
}
