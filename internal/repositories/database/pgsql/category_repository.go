package pgsql

import (
	"context"
	"fmt"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCategoryRepository reads the configured categories from Postgres.
type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new repository for category data.
func NewCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

// ListCategories returns active categories sorted by name, optionally
// narrowed to one transaction type.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, typ domain.TransactionType) ([]domain.Category, error) {
	query := `SELECT name, type FROM categories WHERE is_active = TRUE`
	args := []any{}
	if typ != "" {
		query += ` AND type = $1`
		args = append(args, string(typ))
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		var rawType string
		if err := rows.Scan(&c.Name, &rawType); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		c.Type = domain.TransactionType(rawType)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}
