// Package dto defines the tool-facing request and result payloads. Argument
// field names are snake_case to match the declared tool schemas; validation
// rules live on the validate tags and are enforced by the dispatcher before
// any service is called.
package dto

import (
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddTransactionRequest records a new income or expense transaction.
type AddTransactionRequest struct {
	Type          string          `json:"type" validate:"required,oneof=income expense"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Category      string          `json:"category" validate:"required"`
	AccountName   string          `json:"account_name" validate:"required"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=upi card cash netbanking wallet"`
	Tags          []string        `json:"tags"`
}

// TransferRequest moves money between two accounts; neither income nor
// expense.
type TransferRequest struct {
	FromAccount string          `json:"from_account" validate:"required"`
	ToAccount   string          `json:"to_account" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// ListTransactionsRequest filters transaction history.
type ListTransactionsRequest struct {
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	Type        string `json:"type" validate:"omitempty,oneof=income expense transfer"`
	Category    string `json:"category"`
	AccountName string `json:"account_name"`
	Search      string `json:"search"`
	Limit       int    `json:"limit" validate:"omitempty,min=1"`
}

// EditTransactionRequest partially overwrites an existing transaction.
type EditTransactionRequest struct {
	TransactionID string           `json:"transaction_id" validate:"required"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description"`
	Date          *string          `json:"date"`
}

// DeleteTransactionRequest removes a transaction by id.
type DeleteTransactionRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
}

// GetBalanceRequest fetches one or all derived account balances.
type GetBalanceRequest struct {
	AccountName string `json:"account_name"`
}

// TransactionRow is one listed transaction with resolved account names.
type TransactionRow struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Account       string          `json:"account,omitempty"`
	ToAccount     string          `json:"to_account,omitempty"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
}

// AddTransactionResult confirms a recorded transaction.
type AddTransactionResult struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	Transaction TransactionRow `json:"transaction"`
}

// TransferResult confirms a recorded transfer.
type TransferResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Amount  decimal.Decimal `json:"amount"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Date    string          `json:"date"`
}

// TransactionListResult is a filtered transaction history page.
type TransactionListResult struct {
	Count        int              `json:"count"`
	Transactions []TransactionRow `json:"transactions"`
}

// BalancesResult lists derived balances per account.
type BalancesResult struct {
	Balances []BalanceRow `json:"balances"`
}

// BalanceRow is one derived account balance.
type BalanceRow struct {
	Account        string          `json:"account"`
	Type           string          `json:"type"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// ToTransactionRow converts a domain transaction plus resolved account names
// into a listing row.
func ToTransactionRow(t domain.Transaction, account, toAccount string) TransactionRow {
	return TransactionRow{
		ID:            t.TransactionID,
		Date:          t.Date,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Category:      t.Category,
		Account:       account,
		ToAccount:     toAccount,
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		Tags:          t.Tags,
	}
}
