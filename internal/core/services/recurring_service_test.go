package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	portssvc "github.com/expensemcp/expense_mcp_app/internal/core/ports/services"
	"github.com/expensemcp/expense_mcp_app/internal/core/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RecurringServiceTestSuite struct {
	suite.Suite
	recurringRepo *MockRecurringRepository
	service       portssvc.RecurringSvcFacade
	ctx           context.Context
}

func (s *RecurringServiceTestSuite) SetupTest() {
	s.recurringRepo = new(MockRecurringRepository)
	s.service = services.NewRecurringService(s.recurringRepo,
		services.WithRecurringClock(func() time.Time { return fixedNow }))
	s.ctx = context.Background()
}

func (s *RecurringServiceTestSuite) TestGetRecurringDue_DefaultsToSevenDays() {
	recurring := []domain.RecurringTransaction{
		{Description: "Rent", Amount: decimal.NewFromInt(25000), Category: "Housing", Frequency: "monthly", NextDueDate: "2025-03-14"},
		{Description: "Netflix", Amount: decimal.NewFromInt(649), Category: "Entertainment", Frequency: "monthly", NextDueDate: "2025-03-17"},
	}
	s.recurringRepo.On("ListRecurringDue", s.ctx, "2025-03-22").Return(recurring, nil)

	result, err := s.service.GetRecurringDue(s.ctx, dto.GetRecurringDueRequest{})

	s.Require().NoError(err)
	s.Equal(2, result.UpcomingCount)
	s.Require().Len(result.RecurringTransactions, 2)
	// Yesterday's rent is overdue by a day.
	s.Equal(-1, result.RecurringTransactions[0].DaysUntilDue)
	s.Equal("Rent", result.RecurringTransactions[0].Description)
	s.Equal(2, result.RecurringTransactions[1].DaysUntilDue)
}

func (s *RecurringServiceTestSuite) TestGetRecurringDue_CustomLookahead() {
	s.recurringRepo.On("ListRecurringDue", s.ctx, "2025-04-14").Return([]domain.RecurringTransaction{}, nil)

	result, err := s.service.GetRecurringDue(s.ctx, dto.GetRecurringDueRequest{DaysAhead: 30})

	s.Require().NoError(err)
	s.Equal(0, result.UpcomingCount)
	s.Empty(result.RecurringTransactions)
}

func (s *RecurringServiceTestSuite) TestGetRecurringDue_RepositoryFailure() {
	s.recurringRepo.On("ListRecurringDue", s.ctx, "2025-03-22").Return(nil, errors.New("connection reset"))

	result, err := s.service.GetRecurringDue(s.ctx, dto.GetRecurringDueRequest{})

	s.Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrUpstream)
}

func TestRecurringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceTestSuite))
}
