// Package dashboard contains aggregate analytics use cases.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// CategoryBreakdown represents one category's share of the period.
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Type     string          `json:"type"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// GetSummaryOutput represents the aggregated totals for the period.
type GetSummaryOutput struct {
	IncomeTotal  decimal.Decimal     `json:"income_total"`
	ExpenseTotal decimal.Decimal     `json:"expense_total"`
	NetTotal     decimal.Decimal     `json:"net_total"`
	ByCategory   []CategoryBreakdown `json:"by_category"`
}

// GetSummaryUseCase computes the aggregate analytics backing the dashboard.
// Results are cached best-effort under a per-user-and-period key; cache
// failures fall through to a fresh computation.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.SummaryCache
	cacheTTL        time.Duration
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance. The cache
// may be nil, in which case every call computes from storage.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository, cache adapter.SummaryCache, cacheTTL time.Duration) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	key := uc.cacheKey(input)

	if uc.cache != nil {
		if payload, err := uc.cache.Get(ctx, key); err != nil {
			slog.Warn("Summary cache read failed", "key", key, "error", err)
		} else if payload != nil {
			var cached GetSummaryOutput
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
			slog.Warn("Discarding unreadable summary cache entry", "key", key)
		}
	}

	totals, err := uc.transactionRepo.TotalsByCategory(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	output := &GetSummaryOutput{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
		NetTotal:     decimal.Zero,
		ByCategory:   make([]CategoryBreakdown, 0, len(totals)),
	}

	for _, t := range totals {
		switch t.Type {
		case entity.TransactionTypeIncome:
			output.IncomeTotal = output.IncomeTotal.Add(t.Total)
		case entity.TransactionTypeExpense:
			output.ExpenseTotal = output.ExpenseTotal.Add(t.Total)
		}
		output.ByCategory = append(output.ByCategory, CategoryBreakdown{
			Category: t.Category,
			Type:     string(t.Type),
			Total:    t.Total,
			Count:    t.Count,
		})
	}
	output.NetTotal = output.IncomeTotal.Sub(output.ExpenseTotal)

	if uc.cache != nil {
		if payload, err := json.Marshal(output); err == nil {
			if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
				slog.Warn("Summary cache write failed", "key", key, "error", err)
			}
		}
	}

	return output, nil
}

func (uc *GetSummaryUseCase) cacheKey(input GetSummaryInput) string {
	return fmt.Sprintf("summary:%s:%s:%s",
		input.UserID,
		input.StartDate.UTC().Format("2006-01-02"),
		input.EndDate.UTC().Format("2006-01-02"),
	)
}
