package pgsql

import (
	"context"
	"fmt"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRecurringRepository reads scheduled recurring transactions from
// Postgres.
type PgxRecurringRepository struct {
	pool *pgxpool.Pool
}

// NewRecurringRepository creates a new repository for recurring transaction
// data.
func NewRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringRepository {
	return &PgxRecurringRepository{pool: pool}
}

var _ portsrepo.RecurringRepository = (*PgxRecurringRepository)(nil)

// ListRecurringDue returns active recurring transactions due on or before
// the given date, soonest first.
func (r *PgxRecurringRepository) ListRecurringDue(ctx context.Context, before string) ([]domain.RecurringTransaction, error) {
	query := `
		SELECT recurring_id, description, amount, category, frequency, next_due_date::text
		FROM recurring_transactions
		WHERE is_active = TRUE AND next_due_date <= $1
		ORDER BY next_due_date;
	`
	rows, err := r.pool.Query(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring transactions: %w", err)
	}
	defer rows.Close()

	var due []domain.RecurringTransaction
	for rows.Next() {
		var rt domain.RecurringTransaction
		if err := rows.Scan(&rt.RecurringID, &rt.Description, &rt.Amount, &rt.Category, &rt.Frequency, &rt.NextDueDate); err != nil {
			return nil, fmt.Errorf("failed to scan recurring transaction row: %w", err)
		}
		due = append(due, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring transaction rows: %w", err)
	}
	return due, nil
}
