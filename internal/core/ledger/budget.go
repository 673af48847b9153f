package ledger

import (
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// warningThreshold marks the fraction of a budget limit past which the
// status degrades to warning.
var warningThreshold = decimal.New(8, -1) // 0.8

// EvaluateBudget compares spend-to-date against a configured limit. The
// percent-used figure is rendered to two decimal places as a string; when the
// limit is zero it is fixed at "0.00" instead of dividing by zero.
// Classification applies in order, first match wins: spent over the limit is
// over_budget, spent past 80% of the limit is warning, otherwise healthy.
func EvaluateBudget(limit, spent decimal.Decimal) (remaining decimal.Decimal, percentUsed string, status domain.BudgetHealth) {
	remaining = limit.Sub(spent)

	percentUsed = "0.00"
	if !limit.IsZero() {
		percentUsed = spent.Div(limit).Mul(decimal.NewFromInt(100)).StringFixed(2)
	}

	switch {
	case spent.GreaterThan(limit):
		status = domain.BudgetOver
	case spent.GreaterThan(limit.Mul(warningThreshold)):
		status = domain.BudgetWarning
	default:
		status = domain.BudgetHealthy
	}
	return remaining, percentUsed, status
}
