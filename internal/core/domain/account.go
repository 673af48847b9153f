package domain

import "github.com/shopspring/decimal"

// Account represents a money account (bank, card, cash, wallet). Its balance
// is never stored directly; it is always derived from the initial balance plus
// the signed sum of associated transactions.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	Name           string          `json:"name"`      // User-defined name, matched fuzzily by tools
	Type           string          `json:"type"`      // bank, credit_card, cash, wallet
	IsActive       bool            `json:"isActive"`  // Soft delete flag
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// AccountBalance is a derived row from the account_balances view:
// current = initial + signed sum of the account's transactions.
type AccountBalance struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}
