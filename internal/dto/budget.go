package dto

import (
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest upserts a monthly category budget. Month defaults to the
// current month when omitted.
type SetBudgetRequest struct {
	Category string          `json:"category" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Month    string          `json:"month" validate:"omitempty,len=7"`
}

// SetBudgetResult confirms an upserted budget.
type SetBudgetResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Budget  domain.Budget `json:"budget"`
}

// GetBudgetStatusRequest selects budgets to evaluate. Category "" means all
// budgets configured for the month.
type GetBudgetStatusRequest struct {
	Month    string `json:"month" validate:"omitempty,len=7"`
	Category string `json:"category"`
}

// BudgetStatusRow is one evaluated budget with tool-schema field names.
type BudgetStatusRow struct {
	Category    string          `json:"category"`
	BudgetLimit decimal.Decimal `json:"budget_limit"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed string          `json:"percent_used"`
	Status      string          `json:"status"`
}

// BudgetStatusResult is the evaluated state of a month's budgets.
type BudgetStatusResult struct {
	Month   string            `json:"month"`
	Budgets []BudgetStatusRow `json:"budgets"`
}

// ToBudgetStatusRow converts a domain budget status into its tool payload
// shape.
func ToBudgetStatusRow(s domain.BudgetStatus) BudgetStatusRow {
	return BudgetStatusRow{
		Category:    s.Category,
		BudgetLimit: s.BudgetLimit,
		Spent:       s.Spent,
		Remaining:   s.Remaining,
		PercentUsed: s.PercentUsed,
		Status:      string(s.Status),
	}
}
