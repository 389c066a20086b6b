package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/application/usecase/dashboard"
)

// CategoryBreakdownResponse represents one category's share of the period.
type CategoryBreakdownResponse struct {
	Category string          `json:"category"`
	Type     string          `json:"type"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// SummaryResponse represents the aggregated dashboard totals for a period.
type SummaryResponse struct {
	IncomeTotal  decimal.Decimal             `json:"income_total"`
	ExpenseTotal decimal.Decimal             `json:"expense_total"`
	NetTotal     decimal.Decimal             `json:"net_total"`
	ByCategory   []CategoryBreakdownResponse `json:"by_category"`
}

// ToSummaryResponse converts a summary output to a response DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	byCategory := make([]CategoryBreakdownResponse, len(output.ByCategory))
	for i, breakdown := range output.ByCategory {
		byCategory[i] = CategoryBreakdownResponse{
			Category: breakdown.Category,
			Type:     breakdown.Type,
			Total:    breakdown.Total,
			Count:    breakdown.Count,
		}
	}
	return SummaryResponse{
		IncomeTotal:  output.IncomeTotal,
		ExpenseTotal: output.ExpenseTotal,
		NetTotal:     output.NetTotal,
		ByCategory:   byCategory,
	}
}
