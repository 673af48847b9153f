package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	portsrepo "github.com/expensemcp/expense_mcp_app/internal/core/ports/repositories"
	portssvc "github.com/expensemcp/expense_mcp_app/internal/core/ports/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
)

const defaultDaysAhead = 7

// recurringService implements RecurringSvcFacade.
type recurringService struct {
	BaseService
	recurringRepo portsrepo.RecurringRepository
	now           func() time.Time
}

// RecurringServiceOption is a functional option for configuring the
// recurring service.
type RecurringServiceOption func(*recurringService)

// WithRecurringClock overrides the service clock; used in tests.
func WithRecurringClock(now func() time.Time) RecurringServiceOption {
	return func(s *recurringService) {
		s.now = now
	}
}

// NewRecurringService creates a new recurring-transaction service.
func NewRecurringService(recurringRepo portsrepo.RecurringRepository, options ...RecurringServiceOption) portssvc.RecurringSvcFacade {
	svc := &recurringService{
		recurringRepo: recurringRepo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) GetRecurringDue(ctx context.Context, req dto.GetRecurringDueRequest) (*dto.RecurringDueResult, error) {
	daysAhead := req.DaysAhead
	if daysAhead <= 0 {
		daysAhead = defaultDaysAhead
	}

	today := s.now().UTC()
	cutoff := today.AddDate(0, 0, daysAhead).Format(ledger.DateLayout)

	recurring, err := s.recurringRepo.ListRecurringDue(ctx, cutoff)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring transactions")
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	rows := make([]dto.RecurringDueRow, len(recurring))
	for i, r := range recurring {
		rows[i] = dto.RecurringDueRow{
			Description:  r.Description,
			Amount:       r.Amount,
			Category:     r.Category,
			Frequency:    r.Frequency,
			NextDueDate:  r.NextDueDate,
			DaysUntilDue: daysUntil(today, r.NextDueDate),
		}
	}

	s.LogInfo(ctx, "Recurring dues listed", slog.Int("count", len(rows)), slog.Int("days_ahead", daysAhead))
	return &dto.RecurringDueResult{UpcomingCount: len(rows), RecurringTransactions: rows}, nil
}

// daysUntil counts whole days from today to the due date, rounding up.
// Overdue entries come back negative.
func daysUntil(today time.Time, dueDate string) int {
	due, err := time.Parse(ledger.DateLayout, dueDate)
	if err != nil {
		return 0
	}
	hours := due.Sub(today).Hours()
	return int(math.Ceil(hours / 24))
}
