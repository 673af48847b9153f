package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	portssvc "github.com/expensemcp/expense_mcp_app/internal/core/ports/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
	"github.com/shopspring/decimal"
)

// summaryService implements SummarySvcFacade: period summaries and
// period-to-period spending comparison over transaction snapshots.
type summaryService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	now             func() time.Time
}

// SummaryServiceOption is a functional option for configuring the summary
// service.
type SummaryServiceOption func(*summaryService)

// WithSummaryClock overrides the service clock; used in tests.
func WithSummaryClock(now func() time.Time) SummaryServiceOption {
	return func(s *summaryService) {
		s.now = now
	}
}

// NewSummaryService creates a new summary service.
func NewSummaryService(transactionRepo portsrepo.TransactionRepository, options ...SummaryServiceOption) portssvc.SummarySvcFacade {
	svc := &summaryService{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

func (s *summaryService) GetSummary(ctx context.Context, req dto.SummaryRequest) (*dto.SummaryResult, error) {
	var startDate, endDate string
	if req.Period == ledger.PeriodCustom && req.FromDate != "" && req.ToDate != "" {
		startDate, endDate = req.FromDate, req.ToDate
	} else {
		startDate, endDate = ledger.PeriodRange(req.Period, s.now())
	}

	txns, err := s.transactionRepo.FindTransactions(ctx, domain.TransactionFilter{
		FromDate: startDate,
		ToDate:   endDate,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for summary",
			slog.String("from", startDate), slog.String("to", endDate))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	summary := ledger.Summarize(txns)
	s.LogInfo(ctx, "Summary generated",
		slog.String("period", req.Period),
		slog.String("total_income", summary.TotalIncome.String()),
		slog.String("total_expense", summary.TotalExpense.String()))
	return &dto.SummaryResult{
		Period:             req.Period,
		FromDate:           startDate,
		ToDate:             endDate,
		TotalIncome:        summary.TotalIncome,
		TotalExpense:       summary.TotalExpense,
		NetSavings:         summary.NetSavings,
		TransactionCount:   summary.TransactionCount,
		ExpensesByCategory: summary.ExpensesByCategory,
		IncomeByCategory:   summary.IncomeByCategory,
	}, nil
}

func (s *summaryService) CompareSpending(ctx context.Context, req dto.CompareSpendingRequest) (*dto.ComparisonResult, error) {
	period1, err := s.expenseTotal(ctx, req.Period1)
	if err != nil {
		return nil, err
	}
	period2, err := s.expenseTotal(ctx, req.Period2)
	if err != nil {
		return nil, err
	}

	comparison := ledger.CompareSpending(period1.TotalExpense, period2.TotalExpense)
	s.LogInfo(ctx, "Spending compared",
		slog.String("period1", req.Period1),
		slog.String("period2", req.Period2),
		slog.String("trend", comparison.Trend))
	return &dto.ComparisonResult{
		Period1:    period1,
		Period2:    period2,
		Comparison: dto.ToComparisonMetrics(comparison),
	}, nil
}

// expenseTotal sums expense-type transactions for one named period.
func (s *summaryService) expenseTotal(ctx context.Context, period string) (dto.PeriodExpense, error) {
	startDate, endDate := ledger.PeriodRange(period, s.now())
	txns, err := s.transactionRepo.FindTransactions(ctx, domain.TransactionFilter{
		FromDate: startDate,
		ToDate:   endDate,
		Type:     domain.Expense,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch expenses for comparison", slog.String("period", period))
		return dto.PeriodExpense{}, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return dto.PeriodExpense{
		Name:         period,
		TotalExpense: total,
		FromDate:     startDate,
		ToDate:       endDate,
	}, nil
}
