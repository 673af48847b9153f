// Package gateways defines the outbound ports for remote collaborators.
package gateways

import (
	"context"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseFilter narrows a shared-expense listing.
type ExpenseFilter struct {
	GroupID     int64
	FriendID    int64
	DatedAfter  string
	DatedBefore string
	Limit       int
}

// CreateExpensePayload carries a fully allocated expense for creation or
// update on the shared-expense service. Allocations must already reconcile
// to Cost.
type CreateExpensePayload struct {
	Cost         decimal.Decimal
	Description  string
	CurrencyCode string
	GroupID      int64
	Date         string
	Allocations  []domain.ShareAllocation
}

// DebtPayload records a direct settlement between the user and a friend.
type DebtPayload struct {
	FriendID     int64
	Amount       decimal.Decimal
	CurrencyCode string
}

// SplitwiseGateway is the remote-procedure surface of the shared-expense
// service. All operations are fallible and context-bound; implementations
// normalize the service's loosely-typed responses into the fixed domain
// shapes before anything reaches the core, and wrap failures in
// apperrors.ErrUpstream with the service message verbatim.
type SplitwiseGateway interface {
	GetCurrentUser(ctx context.Context) (*domain.SplitwiseUser, error)
	GetFriends(ctx context.Context) ([]domain.Friend, error)
	GetGroups(ctx context.Context) ([]domain.SharedGroup, error)
	GetExpenses(ctx context.Context, filter ExpenseFilter) ([]domain.SharedExpense, error)
	GetExpense(ctx context.Context, expenseID int64) (*domain.SharedExpense, error)
	CreateExpense(ctx context.Context, payload CreateExpensePayload) (*domain.SharedExpense, error)
	UpdateExpense(ctx context.Context, expenseID int64, payload CreateExpensePayload) (*domain.SharedExpense, error)
	DeleteExpense(ctx context.Context, expenseID int64) error
	CreateDebt(ctx context.Context, payload DebtPayload) error
	GetCategories(ctx context.Context) ([]domain.SharedCategory, error)
	GetCurrencies(ctx context.Context) ([]domain.Currency, error)
	GetNotifications(ctx context.Context, limit int) ([]domain.Notification, error)
}
