package domain

import "github.com/shopspring/decimal"

// RecurringTransaction is a scheduled transaction template (rent, salary,
// subscriptions) tracked so upcoming dues can be surfaced.
type RecurringTransaction struct {
	RecurringID string          `json:"recurringID"` // Primary Key (UUID)
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Frequency   string          `json:"frequency"` // weekly, monthly, yearly
	NextDueDate string          `json:"nextDueDate"`
	IsActive    bool            `json:"isActive"`
}
