package pgsql

import (
	"context"
	"fmt"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBudgetRepository stores monthly category budgets in Postgres.
type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new repository for budget data.
func NewBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{pool: pool}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

// UpsertBudget inserts a budget or overwrites the limit when a budget for
// the same (category, month) already exists.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	query := `
		INSERT INTO budgets (category, month, limit_amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (category, month)
		DO UPDATE SET limit_amount = EXCLUDED.limit_amount
		RETURNING category, month, limit_amount;
	`
	var saved domain.Budget
	err := r.pool.QueryRow(ctx, query, budget.Category, budget.Month, budget.LimitAmount).
		Scan(&saved.Category, &saved.Month, &saved.LimitAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget for %s %s: %w", budget.Category, budget.Month, err)
	}
	return &saved, nil
}

// FindBudgets lists budgets for a month, optionally narrowed to one category.
func (r *PgxBudgetRepository) FindBudgets(ctx context.Context, month, category string) ([]domain.Budget, error) {
	query := `SELECT category, month, limit_amount FROM budgets WHERE month = $1`
	args := []any{month}
	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}
	query += ` ORDER BY category;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for %s: %w", month, err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var b domain.Budget
		if err := rows.Scan(&b.Category, &b.Month, &b.LimitAmount); err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}
	return budgets, nil
}
