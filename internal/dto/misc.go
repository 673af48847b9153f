package dto

import "github.com/shopspring/decimal"

// GetCategoriesRequest optionally narrows the category listing by type.
type GetCategoriesRequest struct {
	Type string `json:"type" validate:"omitempty,oneof=income expense"`
}

// CategoryRow is one configured category.
type CategoryRow struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CategoriesResult lists the configured categories.
type CategoriesResult struct {
	Categories []CategoryRow `json:"categories"`
}

// GetRecurringDueRequest looks ahead the given number of days; defaults to 7.
type GetRecurringDueRequest struct {
	DaysAhead int `json:"days_ahead" validate:"omitempty,min=1"`
}

// RecurringDueRow is one upcoming recurring transaction.
type RecurringDueRow struct {
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Frequency    string          `json:"frequency"`
	NextDueDate  string          `json:"next_due_date"`
	DaysUntilDue int             `json:"days_until_due"`
}

// RecurringDueResult lists the recurring transactions due soon.
type RecurringDueResult struct {
	UpcomingCount         int               `json:"upcoming_count"`
	RecurringTransactions []RecurringDueRow `json:"recurring_transactions"`
}

// ErrorResult is the structured error payload every failed tool call
// returns in place of a success payload.
type ErrorResult struct {
	Error             string   `json:"error"`
	AvailableAccounts []string `json:"available_accounts,omitempty"`
}
