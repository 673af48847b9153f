package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	portssvc "github.com/expensemcp/expense_mcp_app/internal/core/ports/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
)

const defaultTransactionLimit = 20

// transactionService implements TransactionSvcFacade over the account and
// transaction repositories.
type transactionService struct {
	BaseService
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
	now             func() time.Time
}

// TransactionServiceOption is a functional option for configuring the
// transaction service.
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the service clock; used in tests.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(accountRepo portsrepo.AccountRepository, transactionRepo portsrepo.TransactionRepository, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveAccount matches a free-text account name against the active
// accounts. A failed match comes back as an AccountNotFoundError carrying
// the active account names as a hint.
func (s *transactionService) resolveAccount(ctx context.Context, name string) (domain.Account, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}
	account, ok := ledger.MatchAccount(name, accounts)
	if !ok {
		return domain.Account{}, &apperrors.AccountNotFoundError{
			Name:      name,
			Available: ledger.AccountNames(accounts),
		}
	}
	return account, nil
}

// resolveDate normalizes the date argument, logging when an unparseable
// value silently fell back to today.
func (s *transactionService) resolveDate(ctx context.Context, raw string) string {
	if raw == "" {
		return s.now().UTC().Format(ledger.DateLayout)
	}
	date, fellBack := ledger.ResolveDate(raw, s.now())
	if fellBack {
		s.LogWarn(ctx, "Unparseable date fell back to today", slog.String("input", raw), slog.String("resolved", date))
	}
	return date
}

func (s *transactionService) AddTransaction(ctx context.Context, req dto.AddTransactionRequest) (*dto.AddTransactionResult, error) {
	account, err := s.resolveAccount(ctx, req.AccountName)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          s.resolveDate(ctx, req.Date),
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Category:      req.Category,
		AccountID:     account.AccountID,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Tags:          req.Tags,
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", req.Type),
		slog.String("category", req.Category))
	return &dto.AddTransactionResult{
		Success:     true,
		Message:     fmt.Sprintf("Recorded ₹%s %s in %s using %s", req.Amount, req.Type, req.Category, account.Name),
		Transaction: dto.ToTransactionRow(txn, account.Name, ""),
	}, nil
}

func (s *transactionService) Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResult, error) {
	fromAccount, err := s.resolveAccount(ctx, req.FromAccount)
	if err != nil {
		return nil, err
	}
	toAccount, err := s.resolveAccount(ctx, req.ToAccount)
	if err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = "Transfer to " + toAccount.Name
	}

	// A transfer is one record carrying both account references, not a
	// double-entry pair; the balance view derives both sides from it.
	txn := domain.Transaction{
		TransactionID:       uuid.NewString(),
		Date:                s.resolveDate(ctx, req.Date),
		Type:                domain.Transfer,
		Amount:              req.Amount,
		Category:            "Transfer",
		AccountID:           fromAccount.AccountID,
		TransferToAccountID: toAccount.AccountID,
		TransferID:          uuid.NewString(),
		Description:         description,
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transfer",
			slog.String("from_account_id", fromAccount.AccountID),
			slog.String("to_account_id", toAccount.AccountID))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	s.LogInfo(ctx, "Transfer recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("from", fromAccount.Name),
		slog.String("to", toAccount.Name))
	return &dto.TransferResult{
		Success: true,
		Message: fmt.Sprintf("Transferred ₹%s from %s to %s", req.Amount, fromAccount.Name, toAccount.Name),
		Amount:  req.Amount,
		From:    fromAccount.Name,
		To:      toAccount.Name,
		Date:    txn.Date,
	}, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) (*dto.TransactionListResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	txns, err := s.transactionRepo.FindTransactions(ctx, domain.TransactionFilter{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		Type:     domain.TransactionType(req.Type),
		Category: req.Category,
		Limit:    limit,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	names, err := s.accountNamesByID(ctx)
	if err != nil {
		return nil, err
	}

	// Account and free-text filters apply after the storage query, matching
	// against the resolved account name and the description/category text.
	rows := make([]dto.TransactionRow, 0, len(txns))
	for _, t := range txns {
		accountName := names[t.AccountID]
		if req.AccountName != "" && !strings.Contains(strings.ToLower(accountName), strings.ToLower(req.AccountName)) {
			continue
		}
		if req.Search != "" {
			needle := strings.ToLower(req.Search)
			if !strings.Contains(strings.ToLower(t.Description), needle) &&
				!strings.Contains(strings.ToLower(t.Category), needle) {
				continue
			}
		}
		rows = append(rows, dto.ToTransactionRow(t, accountName, names[t.TransferToAccountID]))
	}

	s.LogInfo(ctx, "Transactions listed", slog.Int("count", len(rows)))
	return &dto.TransactionListResult{Count: len(rows), Transactions: rows}, nil
}

func (s *transactionService) EditTransaction(ctx context.Context, req dto.EditTransactionRequest) (*domain.Transaction, error) {
	update := domain.TransactionUpdate{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil {
		resolved := s.resolveDate(ctx, *req.Date)
		update.Date = &resolved
	}

	updated, err := s.transactionRepo.UpdateTransaction(ctx, req.TransactionID, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", req.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", req.TransactionID))
	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) GetBalances(ctx context.Context, accountName string) (*dto.BalancesResult, error) {
	accountID := ""
	if accountName != "" {
		account, err := s.resolveAccount(ctx, accountName)
		if err != nil {
			return nil, err
		}
		accountID = account.AccountID
	}

	balances, err := s.accountRepo.ListBalances(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balances")
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	rows := make([]dto.BalanceRow, len(balances))
	for i, b := range balances {
		rows[i] = dto.BalanceRow{
			Account:        b.Name,
			Type:           b.Type,
			CurrentBalance: b.CurrentBalance,
			InitialBalance: b.InitialBalance,
		}
	}
	return &dto.BalancesResult{Balances: rows}, nil
}

// accountNamesByID maps active account ids to names for transaction
// listings. Rows against deactivated accounts keep an empty name.
func (s *transactionService) accountNamesByID(ctx context.Context) (map[string]string, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.AccountID] = a.Name
	}
	return names, nil
}
