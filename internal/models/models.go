// Package models holds the database representations of the stored entities.
// Services never see these; repositories convert to and from the domain
// shapes.
package models

import "github.com/shopspring/decimal"

// Account mirrors the accounts table.
type Account struct {
	AccountID      string
	Name           string
	AccountType    string
	IsActive       bool
	InitialBalance decimal.Decimal
}

// AccountBalance mirrors a row of the derived account_balances view.
type AccountBalance struct {
	AccountID      string
	Name           string
	AccountType    string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
}

// Transaction mirrors the transactions table. Nullable columns are handled
// at scan time in the repository.
type Transaction struct {
	TransactionID       string
	Date                string
	Type                string
	Amount              decimal.Decimal
	Category            string
	AccountID           string
	TransferToAccountID string
	TransferID          string
	Description         string
	PaymentMethod       string
	Tags                []string
}

// Budget mirrors the budgets table; (category, month) is unique.
type Budget struct {
	Category    string
	Month       string
	LimitAmount decimal.Decimal
}

// Category mirrors the categories table.
type Category struct {
	Name     string
	Type     string
	IsActive bool
}

// RecurringTransaction mirrors the recurring_transactions table.
type RecurringTransaction struct {
	RecurringID string
	Description string
	Amount      decimal.Decimal
	Category    string
	Frequency   string
	NextDueDate string
	IsActive    bool
}
