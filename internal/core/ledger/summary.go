package ledger

import (
	"sort"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize aggregates a transaction set into income and expense totals with
// per-category breakdowns. Transfers are excluded from both sides but still
// count toward TransactionCount. Amounts are summed as decimals; this is a
// reporting aggregate, not a balance-critical allocation, so there is no
// minor-unit conversion here.
func Summarize(txns []domain.Transaction) domain.PeriodSummary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	incomeByCategory := make(map[string]decimal.Decimal)
	expenseByCategory := make(map[string]decimal.Decimal)

	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			totalIncome = totalIncome.Add(t.Amount)
			incomeByCategory[t.Category] = incomeByCategory[t.Category].Add(t.Amount)
		case domain.Expense:
			totalExpense = totalExpense.Add(t.Amount)
			expenseByCategory[t.Category] = expenseByCategory[t.Category].Add(t.Amount)
		}
	}

	return domain.PeriodSummary{
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		NetSavings:         totalIncome.Sub(totalExpense),
		TransactionCount:   len(txns),
		ExpensesByCategory: sortByAmountDesc(expenseByCategory),
		IncomeByCategory:   sortByAmountDesc(incomeByCategory),
	}
}

// sortByAmountDesc flattens a category-to-amount map into a sequence sorted
// descending by amount. Ties break by category name ascending, which keeps
// the output deterministic across map iteration orders.
func sortByAmountDesc(byCategory map[string]decimal.Decimal) []domain.CategoryAmount {
	out := make([]domain.CategoryAmount, 0, len(byCategory))
	for category, amount := range byCategory {
		out = append(out, domain.CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CompareSpending derives the difference, percent change, and trend between
// two period expense totals. PercentChange is rendered to two decimal places
// against the second period's total, or "0" when that total is not positive.
func CompareSpending(total1, total2 decimal.Decimal) domain.SpendingComparison {
	difference := total1.Sub(total2)

	percentChange := "0"
	if total2.IsPositive() {
		percentChange = difference.Div(total2).Mul(decimal.NewFromInt(100)).StringFixed(2)
	}

	trend := "same"
	switch {
	case difference.IsPositive():
		trend = "increased"
	case difference.IsNegative():
		trend = "decreased"
	}

	return domain.SpendingComparison{
		Difference:    difference,
		PercentChange: percentChange,
		Trend:         trend,
	}
}
