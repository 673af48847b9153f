package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	"github.com/expensemcp/expense_mcp_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository stores and queries transactions in Postgres.
type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, date, type, amount, category, account_id, transfer_to_account_id, transfer_id, description, payment_method, tags`

// date comes back as text so the domain keeps its YYYY-MM-DD string form.
const transactionSelectColumns = `transaction_id, date::text, type, amount, category, account_id, transfer_to_account_id, transfer_id, description, payment_method, tags`

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	var transferTo, transferID, description, paymentMethod sql.NullString
	err := row.Scan(&m.TransactionID, &m.Date, &m.Type, &m.Amount, &m.Category, &m.AccountID,
		&transferTo, &transferID, &description, &paymentMethod, &m.Tags)
	if err != nil {
		return nil, err
	}
	m.TransferToAccountID = transferTo.String
	m.TransferID = transferID.String
	m.Description = description.String
	m.PaymentMethod = paymentMethod.String
	return &m, nil
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		Date:                m.Date,
		Type:                domain.TransactionType(m.Type),
		Amount:              m.Amount,
		Category:            m.Category,
		AccountID:           m.AccountID,
		TransferToAccountID: m.TransferToAccountID,
		TransferID:          m.TransferID,
		Description:         m.Description,
		PaymentMethod:       m.PaymentMethod,
		Tags:                m.Tags,
	}
}

// SaveTransaction inserts a new transaction record.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Date,
		string(txn.Type),
		txn.Amount,
		txn.Category,
		txn.AccountID,
		nullable(txn.TransferToAccountID),
		nullable(txn.TransferID),
		nullable(txn.Description),
		nullable(txn.PaymentMethod),
		txn.Tags,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID fetches one transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionSelectColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := toDomainTransaction(*m)
	return &txn, nil
}

// FindTransactions lists transactions matching the filter, newest first.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var conditions []string
	var args []any

	appendCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, clause+"$"+strconv.Itoa(len(args)))
	}

	if filter.FromDate != "" {
		appendCondition("date >= ", filter.FromDate)
	}
	if filter.ToDate != "" {
		appendCondition("date <= ", filter.ToDate)
	}
	if filter.Type != "" {
		appendCondition("type = ", string(filter.Type))
	}
	if filter.Category != "" {
		appendCondition("category = ", filter.Category)
	}

	query := `SELECT ` + transactionSelectColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction applies a partial field overwrite and returns the
// updated record. Only non-nil fields are written, so a recomputed balance
// reflects the new amount exactly once.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, update domain.TransactionUpdate) (*domain.Transaction, error) {
	var sets []string
	var args []any

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if update.Amount != nil {
		appendSet("amount", *update.Amount)
	}
	if update.Category != nil {
		appendSet("category", *update.Category)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Date != nil {
		appendSet("date", *update.Date)
	}
	if len(sets) == 0 {
		return r.FindTransactionByID(ctx, transactionID)
	}

	args = append(args, transactionID)
	query := `
		UPDATE transactions SET ` + strings.Join(sets, ", ") + `
		WHERE transaction_id = $` + strconv.Itoa(len(args)) + `
		RETURNING ` + transactionSelectColumns + `;
	`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	txn := toDomainTransaction(*m)
	return &txn, nil
}

// DeleteTransaction removes a transaction by id.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

// SumExpenses totals expense-type transactions for a category within an
// inclusive date window.
func (r *PgxTransactionRepository) SumExpenses(ctx context.Context, category, fromDate, toDate string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = 'expense' AND category = $1 AND date >= $2 AND date <= $3;
	`
	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, category, fromDate, toDate).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for %s: %w", category, err)
	}
	return sum, nil
}
