package pgsql

import (
	"context"
	"fmt"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	"github.com/expensemcp/expense_mcp_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository reads accounts and derived balances from Postgres.
type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		Type:           m.AccountType,
		IsActive:       m.IsActive,
		InitialBalance: m.InitialBalance,
	}
}

// ListActiveAccounts returns all active accounts ordered by creation. The
// order is stable so the fuzzy account matcher's first-hit rule is
// deterministic.
func (r *PgxAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, name, account_type, is_active, initial_balance
		FROM accounts
		WHERE is_active = TRUE
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.Name, &m.AccountType, &m.IsActive, &m.InitialBalance); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListBalances reads the derived account_balances view; accountID "" means
// all accounts.
func (r *PgxAccountRepository) ListBalances(ctx context.Context, accountID string) ([]domain.AccountBalance, error) {
	query := `
		SELECT account_id, name, account_type, initial_balance, current_balance
		FROM account_balances
	`
	args := []any{}
	if accountID != "" {
		query += ` WHERE account_id = $1`
		args = append(args, accountID)
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	defer rows.Close()

	var balances []domain.AccountBalance
	for rows.Next() {
		var m models.AccountBalance
		if err := rows.Scan(&m.AccountID, &m.Name, &m.AccountType, &m.InitialBalance, &m.CurrentBalance); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		balances = append(balances, domain.AccountBalance{
			AccountID:      m.AccountID,
			Name:           m.Name,
			Type:           m.AccountType,
			InitialBalance: m.InitialBalance,
			CurrentBalance: m.CurrentBalance,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}
	if accountID != "" && len(balances) == 0 {
		return nil, fmt.Errorf("%w: account %s has no balance row", apperrors.ErrNotFound, accountID)
	}
	return balances, nil
}
