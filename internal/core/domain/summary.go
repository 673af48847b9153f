package domain

import "github.com/shopspring/decimal"

// CategoryAmount is one category's summed amount within a period summary.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// PeriodSummary aggregates a transaction set into reporting totals. Transfers
// are excluded from both sides. NetSavings may be negative.
type PeriodSummary struct {
	TotalIncome        decimal.Decimal  `json:"totalIncome"`
	TotalExpense       decimal.Decimal  `json:"totalExpense"`
	NetSavings         decimal.Decimal  `json:"netSavings"`
	TransactionCount   int              `json:"transactionCount"`
	ExpensesByCategory []CategoryAmount `json:"expensesByCategory"`
	IncomeByCategory   []CategoryAmount `json:"incomeByCategory"`
}

// SpendingComparison holds the derived metrics of comparing expense totals
// across two periods. PercentChange keeps its two-decimal textual rendering;
// "0" when the base period total is zero.
type SpendingComparison struct {
	Difference    decimal.Decimal `json:"difference"`
	PercentChange string          `json:"percentChange"`
	Trend         string          `json:"trend"` // increased, decreased, same
}
