package domain

import "github.com/shopspring/decimal"

// Budget is a monthly spending limit for one category, unique per
// (category, month). Setting the same key twice replaces the limit.
type Budget struct {
	Category    string          `json:"category"`
	Month       string          `json:"month"` // YYYY-MM
	LimitAmount decimal.Decimal `json:"limitAmount"`
}

// BudgetHealth classifies spend-to-date against the configured limit.
type BudgetHealth string

const (
	BudgetOver    BudgetHealth = "over_budget"
	BudgetWarning BudgetHealth = "warning"
	BudgetHealthy BudgetHealth = "healthy"
)

// BudgetStatus is the evaluated state of one budget for a month.
// PercentUsed keeps its textual two-decimal rendering; "0.00" when the
// limit is zero.
type BudgetStatus struct {
	Category    string          `json:"category"`
	BudgetLimit decimal.Decimal `json:"budgetLimit"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed string          `json:"percentUsed"`
	Status      BudgetHealth    `json:"status"`
}
