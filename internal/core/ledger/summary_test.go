package ledger_test

import (
	"testing"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(typ domain.TransactionType, amount float64, category string) domain.Transaction {
	return domain.Transaction{
		Type:     typ,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
	}
}

func TestSummarize_TotalsAndNetSavings(t *testing.T) {
	summary := ledger.Summarize([]domain.Transaction{
		txn(domain.Income, 50000, "Salary"),
		txn(domain.Expense, 12000, "Rent"),
		txn(domain.Expense, 4500.50, "Food & Dining"),
		txn(domain.Transfer, 10000, "Transfer"),
	})

	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(50000)))
	assert.True(t, summary.TotalExpense.Equal(decimal.NewFromFloat(16500.50)))
	assert.True(t, summary.NetSavings.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))
	assert.Equal(t, 4, summary.TransactionCount, "transfers count toward the row total")
}

func TestSummarize_TransfersExcludedFromBothSides(t *testing.T) {
	summary := ledger.Summarize([]domain.Transaction{
		txn(domain.Transfer, 999, "Transfer"),
	})
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.Empty(t, summary.ExpensesByCategory)
	assert.Empty(t, summary.IncomeByCategory)
}

func TestSummarize_CategoryBreakdownSortedDescending(t *testing.T) {
	summary := ledger.Summarize([]domain.Transaction{
		txn(domain.Expense, 100, "Groceries"),
		txn(domain.Expense, 700, "Rent"),
		txn(domain.Expense, 250, "Groceries"),
		txn(domain.Expense, 40, "Coffee"),
	})

	require.Len(t, summary.ExpensesByCategory, 3)
	assert.Equal(t, "Rent", summary.ExpensesByCategory[0].Category)
	assert.Equal(t, "Groceries", summary.ExpensesByCategory[1].Category)
	assert.True(t, summary.ExpensesByCategory[1].Amount.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, "Coffee", summary.ExpensesByCategory[2].Category)

	for i := 1; i < len(summary.ExpensesByCategory); i++ {
		prev := summary.ExpensesByCategory[i-1].Amount
		cur := summary.ExpensesByCategory[i].Amount
		assert.True(t, prev.GreaterThanOrEqual(cur), "breakdown must be descending by amount")
	}
}

func TestSummarize_TiesBreakByCategoryName(t *testing.T) {
	summary := ledger.Summarize([]domain.Transaction{
		txn(domain.Expense, 100, "Zoo"),
		txn(domain.Expense, 100, "Books"),
	})
	require.Len(t, summary.ExpensesByCategory, 2)
	assert.Equal(t, "Books", summary.ExpensesByCategory[0].Category)
	assert.Equal(t, "Zoo", summary.ExpensesByCategory[1].Category)
}

func TestSummarize_NegativeNetSavings(t *testing.T) {
	summary := ledger.Summarize([]domain.Transaction{
		txn(domain.Income, 100, "Salary"),
		txn(domain.Expense, 300, "Rent"),
	})
	assert.True(t, summary.NetSavings.Equal(decimal.NewFromInt(-200)))
}

func TestSummarize_EmptySet(t *testing.T) {
	summary := ledger.Summarize(nil)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.NetSavings.IsZero())
	assert.Equal(t, 0, summary.TransactionCount)
}

func TestCompareSpending(t *testing.T) {
	tests := []struct {
		name        string
		total1      float64
		total2      float64
		wantDiff    float64
		wantPercent string
		wantTrend   string
	}{
		{"increase", 1500, 1000, 500, "50.00", "increased"},
		{"decrease", 800, 1000, -200, "-20.00", "decreased"},
		{"same", 1000, 1000, 0, "0.00", "same"},
		{"zero base avoids division", 500, 0, 500, "0", "increased"},
		{"fractional percent", 1001.50, 1000, 1.50, "0.15", "increased"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.CompareSpending(decimal.NewFromFloat(tt.total1), decimal.NewFromFloat(tt.total2))
			assert.True(t, got.Difference.Equal(decimal.NewFromFloat(tt.wantDiff)))
			assert.Equal(t, tt.wantPercent, got.PercentChange)
			assert.Equal(t, tt.wantTrend, got.Trend)
		})
	}
}
