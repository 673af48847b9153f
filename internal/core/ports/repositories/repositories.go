// Package repositories defines the outbound storage ports the core services
// depend on. Implementations live under internal/repositories/database.
package repositories

import (
	"context"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository provides read access to the account collection and the
// derived account_balances view.
type AccountRepository interface {
	// ListActiveAccounts returns all active accounts in storage order. The
	// order matters: the account resolver's substring matching takes the
	// first hit in this order.
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)
	// ListBalances returns derived balances; accountID "" means all accounts.
	ListBalances(ctx context.Context, accountID string) ([]domain.AccountBalance, error)
}

// TransactionRepository provides filtered access to the transaction
// collection.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// FindTransactions returns transactions matching the filter, sorted by
	// date descending.
	FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	// UpdateTransaction applies a partial field overwrite and returns the
	// updated record.
	UpdateTransaction(ctx context.Context, transactionID string, update domain.TransactionUpdate) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
	// SumExpenses totals expense-type transactions for a category within an
	// inclusive date window. Used for budget spend-to-date.
	SumExpenses(ctx context.Context, category, fromDate, toDate string) (decimal.Decimal, error)
}

// BudgetRepository provides upsert access to monthly category budgets,
// unique per (category, month).
type BudgetRepository interface {
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
	// FindBudgets lists budgets for a month; category "" means all.
	FindBudgets(ctx context.Context, month, category string) ([]domain.Budget, error)
}

// CategoryRepository lists the configured transaction categories.
type CategoryRepository interface {
	// ListCategories returns active categories sorted by name; typ "" means
	// all types.
	ListCategories(ctx context.Context, typ domain.TransactionType) ([]domain.Category, error)
}

// RecurringRepository lists scheduled recurring transactions.
type RecurringRepository interface {
	// ListRecurringDue returns active recurring transactions due on or
	// before the given date, sorted by next due date.
	ListRecurringDue(ctx context.Context, before string) ([]domain.RecurringTransaction, error)
}

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	TransactionRepo TransactionRepository
	BudgetRepo      BudgetRepository
	CategoryRepo    CategoryRepository
	RecurringRepo   RecurringRepository
}
