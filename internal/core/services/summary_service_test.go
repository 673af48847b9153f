package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	portssvc "github.com/expensemcp/expense_mcp_app/internal/core/ports/services"
	"github.com/expensemcp/expense_mcp_app/internal/core/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	service             portssvc.SummarySvcFacade
	ctx                 context.Context
}

func (s *SummaryServiceTestSuite) SetupTest() {
	s.mockTransactionRepo = new(MockTransactionRepository)
	s.service = services.NewSummaryService(
		s.mockTransactionRepo,
		services.WithSummaryClock(func() time.Time { return fixedNow }),
	)
	s.ctx = context.Background()
}

func (s *SummaryServiceTestSuite) TestGetSummaryThisMonth() {
	txns := []domain.Transaction{
		{Type: domain.Income, Amount: decimal.RequireFromString("90000"), Category: "Salary"},
		{Type: domain.Expense, Amount: decimal.RequireFromString("8000"), Category: "Food & Dining"},
		{Type: domain.Expense, Amount: decimal.RequireFromString("3000"), Category: "Transport"},
		{Type: domain.Transfer, Amount: decimal.RequireFromString("5000"), Category: "Transfer"},
	}
	s.mockTransactionRepo.On("FindTransactions", s.ctx, domain.TransactionFilter{
		FromDate: "2025-03-01",
		ToDate:   "2025-03-15",
	}).Return(txns, nil).Once()

	result, err := s.service.GetSummary(s.ctx, dto.SummaryRequest{Period: "this_month"})
	s.Require().NoError(err)

	s.Equal("this_month", result.Period)
	s.Equal("2025-03-01", result.FromDate)
	s.Equal("2025-03-15", result.ToDate)
	s.True(result.TotalIncome.Equal(decimal.RequireFromString("90000")))
	s.True(result.TotalExpense.Equal(decimal.RequireFromString("11000")))
	s.True(result.NetSavings.Equal(decimal.RequireFromString("79000")))
	// Transfers are excluded from the sums but still counted.
	s.Equal(4, result.TransactionCount)
	s.Require().Len(result.ExpensesByCategory, 2)
	s.Equal("Food & Dining", result.ExpensesByCategory[0].Category)
}

func (s *SummaryServiceTestSuite) TestGetSummaryCustomPeriodUsesBoundsVerbatim() {
	s.mockTransactionRepo.On("FindTransactions", s.ctx, domain.TransactionFilter{
		FromDate: "2025-01-10",
		ToDate:   "2025-01-20",
	}).Return([]domain.Transaction{}, nil).Once()

	result, err := s.service.GetSummary(s.ctx, dto.SummaryRequest{
		Period:   "custom",
		FromDate: "2025-01-10",
		ToDate:   "2025-01-20",
	})
	s.Require().NoError(err)
	s.Equal("2025-01-10", result.FromDate)
	s.Equal("2025-01-20", result.ToDate)
	s.Equal(0, result.TransactionCount)
}

func (s *SummaryServiceTestSuite) TestGetSummaryCustomWithoutBoundsFallsBack() {
	// Custom without both bounds behaves like the default period.
	s.mockTransactionRepo.On("FindTransactions", s.ctx, domain.TransactionFilter{
		FromDate: "2025-03-01",
		ToDate:   "2025-03-15",
	}).Return([]domain.Transaction{}, nil).Once()

	result, err := s.service.GetSummary(s.ctx, dto.SummaryRequest{Period: "custom"})
	s.Require().NoError(err)
	s.Equal("2025-03-01", result.FromDate)
}

func (s *SummaryServiceTestSuite) TestCompareSpending() {
	march := []domain.Transaction{
		{Type: domain.Expense, Amount: decimal.RequireFromString("12000")},
	}
	february := []domain.Transaction{
		{Type: domain.Expense, Amount: decimal.RequireFromString("10000")},
	}
	s.mockTransactionRepo.On("FindTransactions", s.ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.FromDate == "2025-03-01" && f.Type == domain.Expense
	})).Return(march, nil).Once()
	s.mockTransactionRepo.On("FindTransactions", s.ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.FromDate == "2025-02-01" && f.Type == domain.Expense
	})).Return(february, nil).Once()

	result, err := s.service.CompareSpending(s.ctx, dto.CompareSpendingRequest{
		Period1: "this_month",
		Period2: "last_month",
	})
	s.Require().NoError(err)

	s.Equal("this_month", result.Period1.Name)
	s.True(result.Period1.TotalExpense.Equal(decimal.RequireFromString("12000")))
	s.True(result.Comparison.Difference.Equal(decimal.RequireFromString("2000")))
	s.Equal("20.00", result.Comparison.PercentChange)
	s.Equal("increased", result.Comparison.Trend)
}

func (s *SummaryServiceTestSuite) TestCompareSpendingAgainstEmptyPeriod() {
	march := []domain.Transaction{
		{Type: domain.Expense, Amount: decimal.RequireFromString("5000")},
	}
	s.mockTransactionRepo.On("FindTransactions", s.ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.FromDate == "2025-03-01"
	})).Return(march, nil).Once()
	s.mockTransactionRepo.On("FindTransactions", s.ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.FromDate == "2025-02-01"
	})).Return([]domain.Transaction{}, nil).Once()

	result, err := s.service.CompareSpending(s.ctx, dto.CompareSpendingRequest{
		Period1: "this_month",
		Period2: "last_month",
	})
	s.Require().NoError(err)
	// Division by a zero baseline is pinned rather than propagated.
	s.Equal("0", result.Comparison.PercentChange)
	s.Equal("increased", result.Comparison.Trend)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
