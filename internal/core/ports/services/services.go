// Package services defines the inbound service ports the tool dispatcher
// calls into.
package services

import (
	"context"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
)

// TransactionSvcFacade covers transaction recording, transfers, history, and
// derived balances.
type TransactionSvcFacade interface {
	AddTransaction(ctx context.Context, req dto.AddTransactionRequest) (*dto.AddTransactionResult, error)
	Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResult, error)
	ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) (*dto.TransactionListResult, error)
	EditTransaction(ctx context.Context, req dto.EditTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
	GetBalances(ctx context.Context, accountName string) (*dto.BalancesResult, error)
}

// SummarySvcFacade covers period summaries and period-to-period comparison.
type SummarySvcFacade interface {
	GetSummary(ctx context.Context, req dto.SummaryRequest) (*dto.SummaryResult, error)
	CompareSpending(ctx context.Context, req dto.CompareSpendingRequest) (*dto.ComparisonResult, error)
}

// BudgetSvcFacade covers budget upserts and status evaluation.
type BudgetSvcFacade interface {
	SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*dto.SetBudgetResult, error)
	GetBudgetStatus(ctx context.Context, req dto.GetBudgetStatusRequest) (*dto.BudgetStatusResult, error)
}

// CategorySvcFacade lists configured transaction categories.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, req dto.GetCategoriesRequest) (*dto.CategoriesResult, error)
}

// RecurringSvcFacade surfaces upcoming recurring transactions.
type RecurringSvcFacade interface {
	GetRecurringDue(ctx context.Context, req dto.GetRecurringDueRequest) (*dto.RecurringDueResult, error)
}

// SharingSvcFacade covers the shared-expense service tools: equal-split
// expense creation, balance aggregation, and pass-through listings.
type SharingSvcFacade interface {
	GetFriendBalances(ctx context.Context) (*dto.FriendBalancesResult, error)
	AddSharedExpense(ctx context.Context, req dto.AddSharedExpenseRequest) (*dto.SharedExpenseResult, error)
	UpdateSharedExpense(ctx context.Context, req dto.UpdateSharedExpenseRequest) (*dto.SharedExpenseResult, error)
	GetSharedExpense(ctx context.Context, expenseID int64) (*domain.SharedExpense, error)
	ListSharedExpenses(ctx context.Context, req dto.ListSharedExpensesRequest) ([]domain.SharedExpense, error)
	DeleteSharedExpense(ctx context.Context, expenseID int64) error
	SettleDebt(ctx context.Context, req dto.SettleDebtRequest) error
	ListGroups(ctx context.Context) ([]domain.SharedGroup, error)
	ListSharedCategories(ctx context.Context) ([]domain.SharedCategory, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error)
}
