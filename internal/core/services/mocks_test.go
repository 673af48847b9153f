package services_test

import (
	"context"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ports/gateways"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListBalances(ctx context.Context, accountID string) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, update domain.TransactionUpdate) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) SumExpenses(ctx context.Context, category, fromDate, toDate string) (decimal.Decimal, error) {
	args := m.Called(ctx, category, fromDate, toDate)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgets(ctx context.Context, month, category string) ([]domain.Budget, error) {
	args := m.Called(ctx, month, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, typ domain.TransactionType) ([]domain.Category, error) {
	args := m.Called(ctx, typ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Mock RecurringRepository ---
type MockRecurringRepository struct {
	mock.Mock
}

func (m *MockRecurringRepository) ListRecurringDue(ctx context.Context, before string) ([]domain.RecurringTransaction, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringTransaction), args.Error(1)
}

// --- Mock SplitwiseGateway ---
type MockSplitwiseGateway struct {
	mock.Mock
}

func (m *MockSplitwiseGateway) GetCurrentUser(ctx context.Context) (*domain.SplitwiseUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SplitwiseUser), args.Error(1)
}

func (m *MockSplitwiseGateway) GetFriends(ctx context.Context) ([]domain.Friend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Friend), args.Error(1)
}

func (m *MockSplitwiseGateway) GetGroups(ctx context.Context) ([]domain.SharedGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharedGroup), args.Error(1)
}

func (m *MockSplitwiseGateway) GetExpenses(ctx context.Context, filter gateways.ExpenseFilter) ([]domain.SharedExpense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharedExpense), args.Error(1)
}

func (m *MockSplitwiseGateway) GetExpense(ctx context.Context, expenseID int64) (*domain.SharedExpense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SharedExpense), args.Error(1)
}

func (m *MockSplitwiseGateway) CreateExpense(ctx context.Context, payload gateways.CreateExpensePayload) (*domain.SharedExpense, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SharedExpense), args.Error(1)
}

func (m *MockSplitwiseGateway) UpdateExpense(ctx context.Context, expenseID int64, payload gateways.CreateExpensePayload) (*domain.SharedExpense, error) {
	args := m.Called(ctx, expenseID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SharedExpense), args.Error(1)
}

func (m *MockSplitwiseGateway) DeleteExpense(ctx context.Context, expenseID int64) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockSplitwiseGateway) CreateDebt(ctx context.Context, payload gateways.DebtPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockSplitwiseGateway) GetCategories(ctx context.Context) ([]domain.SharedCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharedCategory), args.Error(1)
}

func (m *MockSplitwiseGateway) GetCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockSplitwiseGateway) GetNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
