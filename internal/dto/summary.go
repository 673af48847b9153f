package dto

import (
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryRequest selects a reporting period. Custom periods carry explicit
// bounds which are used verbatim; an inverted range yields zero rows.
type SummaryRequest struct {
	Period   string `json:"period" validate:"required,oneof=this_month last_month this_year custom"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// SummaryResult is the aggregated report for one period.
type SummaryResult struct {
	Period             string                  `json:"period"`
	FromDate           string                  `json:"from_date"`
	ToDate             string                  `json:"to_date"`
	TotalIncome        decimal.Decimal         `json:"total_income"`
	TotalExpense       decimal.Decimal         `json:"total_expense"`
	NetSavings         decimal.Decimal         `json:"net_savings"`
	TransactionCount   int                     `json:"transaction_count"`
	ExpensesByCategory []domain.CategoryAmount `json:"expenses_by_category"`
	IncomeByCategory   []domain.CategoryAmount `json:"income_by_category"`
}

// CompareSpendingRequest selects the two periods to compare.
type CompareSpendingRequest struct {
	Period1 string `json:"period1" validate:"required,oneof=this_month last_month"`
	Period2 string `json:"period2" validate:"required,oneof=this_month last_month"`
}

// PeriodExpense is one side of a spending comparison.
type PeriodExpense struct {
	Name         string          `json:"name"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	FromDate     string          `json:"from_date"`
	ToDate       string          `json:"to_date"`
}

// ComparisonMetrics renders the derived change metrics with tool-schema
// field names.
type ComparisonMetrics struct {
	Difference    decimal.Decimal `json:"difference"`
	PercentChange string          `json:"percent_change"`
	Trend         string          `json:"trend"`
}

// ComparisonResult is the two period totals plus derived change metrics.
type ComparisonResult struct {
	Period1    PeriodExpense     `json:"period1"`
	Period2    PeriodExpense     `json:"period2"`
	Comparison ComparisonMetrics `json:"comparison"`
}

// ToComparisonMetrics converts the domain comparison into its tool payload
// shape.
func ToComparisonMetrics(c domain.SpendingComparison) ComparisonMetrics {
	return ComparisonMetrics{
		Difference:    c.Difference,
		PercentChange: c.PercentChange,
		Trend:         c.Trend,
	}
}
