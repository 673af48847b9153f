package pgsql

import (
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories into the bundle
// the service layer consumes.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     NewAccountRepository(dbPool),
		TransactionRepo: NewTransactionRepository(dbPool),
		BudgetRepo:      NewBudgetRepository(dbPool),
		CategoryRepo:    NewCategoryRepository(dbPool),
		RecurringRepo:   NewRecurringRepository(dbPool),
	}
}
