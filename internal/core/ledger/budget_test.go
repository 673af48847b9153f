package ledger_test

import (
	"testing"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateBudget(t *testing.T) {
	tests := []struct {
		name        string
		limit       float64
		spent       float64
		wantRemain  float64
		wantPercent string
		wantStatus  domain.BudgetHealth
	}{
		{"healthy under eighty percent", 100, 79.99, 20.01, "79.99", domain.BudgetHealthy},
		{"warning just past eighty percent", 100, 80.0001, 19.9999, "80.00", domain.BudgetWarning},
		{"warning at ninety percent", 100, 90, 10, "90.00", domain.BudgetWarning},
		{"over budget by one cent", 100, 100.01, -0.01, "100.01", domain.BudgetOver},
		{"exactly at limit is warning not over", 100, 100, 0, "100.00", domain.BudgetWarning},
		{"exactly eighty percent stays healthy", 100, 80, 20, "80.00", domain.BudgetHealthy},
		{"nothing spent", 500, 0, 500, "0.00", domain.BudgetHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, percent, status := ledger.EvaluateBudget(decimal.NewFromFloat(tt.limit), decimal.NewFromFloat(tt.spent))
			assert.True(t, remaining.Equal(decimal.NewFromFloat(tt.wantRemain)), "remaining %s", remaining)
			assert.Equal(t, tt.wantPercent, percent)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestEvaluateBudget_ZeroLimit(t *testing.T) {
	// A zero limit never divides; percent is pinned at "0.00". Any spend
	// against a zero limit is over budget.
	remaining, percent, status := ledger.EvaluateBudget(decimal.Zero, decimal.NewFromFloat(42.50))
	assert.Equal(t, "0.00", percent)
	assert.Equal(t, domain.BudgetOver, status)
	assert.True(t, remaining.Equal(decimal.NewFromFloat(-42.50)))

	_, percent, status = ledger.EvaluateBudget(decimal.Zero, decimal.Zero)
	assert.Equal(t, "0.00", percent)
	assert.Equal(t, domain.BudgetHealthy, status)
}
