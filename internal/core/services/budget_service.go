package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	portssvc "github.com/expensemcp/expense_mcp_app/internal/core/ports/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
)

// budgetService implements BudgetSvcFacade. Spend-to-date is recomputed from
// expense transactions on every status check; there is no cached running
// total.
type budgetService struct {
	BaseService
	budgetRepo      portsrepo.BudgetRepository
	transactionRepo portsrepo.TransactionRepository
	now             func() time.Time
}

// BudgetServiceOption is a functional option for configuring the budget
// service.
type BudgetServiceOption func(*budgetService)

// WithBudgetClock overrides the service clock; used in tests.
func WithBudgetClock(now func() time.Time) BudgetServiceOption {
	return func(s *budgetService) {
		s.now = now
	}
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, transactionRepo portsrepo.TransactionRepository, options ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*dto.SetBudgetResult, error) {
	month := req.Month
	if month == "" {
		month = ledger.CurrentMonth(s.now())
	}

	budget, err := s.budgetRepo.UpsertBudget(ctx, domain.Budget{
		Category:    req.Category,
		Month:       month,
		LimitAmount: req.Amount,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert budget",
			slog.String("category", req.Category), slog.String("month", month))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	s.LogInfo(ctx, "Budget set",
		slog.String("category", req.Category),
		slog.String("month", month),
		slog.String("limit", req.Amount.String()))
	return &dto.SetBudgetResult{
		Success: true,
		Message: fmt.Sprintf("Budget set for %s: ₹%s for %s", req.Category, req.Amount, month),
		Budget:  *budget,
	}, nil
}

func (s *budgetService) GetBudgetStatus(ctx context.Context, req dto.GetBudgetStatusRequest) (*dto.BudgetStatusResult, error) {
	month := req.Month
	if month == "" {
		month = ledger.CurrentMonth(s.now())
	}

	budgets, err := s.budgetRepo.FindBudgets(ctx, month, req.Category)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch budgets", slog.String("month", month))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	startDate, endDate := ledger.MonthRange(month)

	// Each category's spend-to-date is an independent read; evaluation is
	// associative across categories, so completion order does not matter.
	rows := make([]dto.BudgetStatusRow, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	for i, budget := range budgets {
		i, budget := i, budget
		g.Go(func() error {
			spent, err := s.transactionRepo.SumExpenses(gctx, budget.Category, startDate, endDate)
			if err != nil {
				return fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
			}
			remaining, percentUsed, status := ledger.EvaluateBudget(budget.LimitAmount, spent)
			rows[i] = dto.ToBudgetStatusRow(domain.BudgetStatus{
				Category:    budget.Category,
				BudgetLimit: budget.LimitAmount,
				Spent:       spent,
				Remaining:   remaining,
				PercentUsed: percentUsed,
				Status:      status,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute budget status", slog.String("month", month))
		return nil, err
	}

	s.LogInfo(ctx, "Budget status evaluated", slog.String("month", month), slog.Int("budgets", len(rows)))
	return &dto.BudgetStatusResult{Month: month, Budgets: rows}, nil
}
