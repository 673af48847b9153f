package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	"github.com/expensemcp/expense_mcp_app/internal/core/ports/gateways"
	portssvc "github.com/expensemcp/expense_mcp_app/internal/core/ports/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
	"github.com/shopspring/decimal"
)

const defaultCurrencyCode = "INR"

// sharingService implements SharingSvcFacade over the shared-expense
// service gateway. All split math happens locally before anything is sent
// upstream, so remote creation always carries shares that already reconcile
// to the cost.
type sharingService struct {
	BaseService
	gateway gateways.SplitwiseGateway
	now     func() time.Time
}

// SharingServiceOption is a functional option for configuring the sharing
// service.
type SharingServiceOption func(*sharingService)

// WithSharingClock overrides the service clock; used in tests.
func WithSharingClock(now func() time.Time) SharingServiceOption {
	return func(s *sharingService) {
		s.now = now
	}
}

// NewSharingService creates a new sharing service over the given gateway.
func NewSharingService(gateway gateways.SplitwiseGateway, options ...SharingServiceOption) portssvc.SharingSvcFacade {
	svc := &sharingService{
		gateway: gateway,
		now:     time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SharingSvcFacade = (*sharingService)(nil)

func (s *sharingService) GetFriendBalances(ctx context.Context) (*dto.FriendBalancesResult, error) {
	friends, err := s.gateway.GetFriends(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch friends")
		return nil, err
	}

	balances := ledger.AggregateFriendBalances(friends)
	s.LogInfo(ctx, "Friend balances aggregated",
		slog.Int("friends", len(friends)),
		slog.Int("owed_to_you", len(balances.OwedToYou)),
		slog.Int("you_owe", len(balances.YouOwe)))
	result := dto.ToFriendBalancesResult(balances)
	return &result, nil
}

func (s *sharingService) AddSharedExpense(ctx context.Context, req dto.AddSharedExpenseRequest) (*dto.SharedExpenseResult, error) {
	payload, allocations, err := s.buildExpensePayload(ctx, expenseInput{
		Cost:         req.Cost,
		Description:  req.Description,
		Participants: req.Participants,
		PayerID:      req.PayerID,
		CurrencyCode: req.CurrencyCode,
		GroupID:      req.GroupID,
		Date:         req.Date,
	})
	if err != nil {
		return nil, err
	}

	expense, err := s.gateway.CreateExpense(ctx, payload)
	if err != nil {
		s.LogError(ctx, err, "Failed to create shared expense")
		return nil, err
	}

	s.LogInfo(ctx, "Shared expense created",
		slog.Int64("expense_id", expense.ExpenseID),
		slog.String("cost", req.Cost.String()),
		slog.Int("participants", len(allocations)))
	return &dto.SharedExpenseResult{
		Success: true,
		Message: fmt.Sprintf("Split %s %s equally across %d participants", payload.CurrencyCode, req.Cost, len(allocations)),
		Expense: *expense,
		Shares:  dto.ToShareRows(allocations),
	}, nil
}

func (s *sharingService) UpdateSharedExpense(ctx context.Context, req dto.UpdateSharedExpenseRequest) (*dto.SharedExpenseResult, error) {
	payload, allocations, err := s.buildExpensePayload(ctx, expenseInput{
		Cost:         req.Cost,
		Description:  req.Description,
		Participants: req.Participants,
		PayerID:      req.PayerID,
		CurrencyCode: req.CurrencyCode,
		GroupID:      req.GroupID,
		Date:         req.Date,
	})
	if err != nil {
		return nil, err
	}

	expense, err := s.gateway.UpdateExpense(ctx, req.ExpenseID, payload)
	if err != nil {
		s.LogError(ctx, err, "Failed to update shared expense", slog.Int64("expense_id", req.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Shared expense updated", slog.Int64("expense_id", req.ExpenseID))
	return &dto.SharedExpenseResult{
		Success: true,
		Message: "Shared expense updated successfully",
		Expense: *expense,
		Shares:  dto.ToShareRows(allocations),
	}, nil
}

func (s *sharingService) GetSharedExpense(ctx context.Context, expenseID int64) (*domain.SharedExpense, error) {
	expense, err := s.gateway.GetExpense(ctx, expenseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch shared expense", slog.Int64("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

func (s *sharingService) ListSharedExpenses(ctx context.Context, req dto.ListSharedExpensesRequest) ([]domain.SharedExpense, error) {
	expenses, err := s.gateway.GetExpenses(ctx, gateways.ExpenseFilter{
		GroupID:     req.GroupID,
		FriendID:    req.FriendID,
		DatedAfter:  req.DatedAfter,
		DatedBefore: req.DatedBefore,
		Limit:       req.Limit,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list shared expenses")
		return nil, err
	}
	return expenses, nil
}

func (s *sharingService) DeleteSharedExpense(ctx context.Context, expenseID int64) error {
	if err := s.gateway.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete shared expense", slog.Int64("expense_id", expenseID))
		return err
	}
	s.LogInfo(ctx, "Shared expense deleted", slog.Int64("expense_id", expenseID))
	return nil
}

func (s *sharingService) SettleDebt(ctx context.Context, req dto.SettleDebtRequest) error {
	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = defaultCurrencyCode
	}
	err := s.gateway.CreateDebt(ctx, gateways.DebtPayload{
		FriendID:     req.FriendID,
		Amount:       req.Amount,
		CurrencyCode: currencyCode,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record settlement", slog.Int64("friend_id", req.FriendID))
		return err
	}
	s.LogInfo(ctx, "Settlement recorded",
		slog.Int64("friend_id", req.FriendID),
		slog.String("amount", req.Amount.String()))
	return nil
}

func (s *sharingService) ListGroups(ctx context.Context) ([]domain.SharedGroup, error) {
	groups, err := s.gateway.GetGroups(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list groups")
		return nil, err
	}
	return groups, nil
}

func (s *sharingService) ListSharedCategories(ctx context.Context) ([]domain.SharedCategory, error) {
	categories, err := s.gateway.GetCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shared categories")
		return nil, err
	}
	return categories, nil
}

func (s *sharingService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.gateway.GetCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, err
	}
	return currencies, nil
}

func (s *sharingService) ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	notifications, err := s.gateway.GetNotifications(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications")
		return nil, err
	}
	return notifications, nil
}

// expenseInput is the shared shape of create and update requests.
type expenseInput struct {
	Cost         decimal.Decimal
	Description  string
	Participants []int64
	PayerID      int64
	CurrencyCode string
	GroupID      int64
	Date         string
}

// buildExpensePayload resolves the payer, runs the equal split, and
// assembles the gateway payload. The current user is always a participant;
// when PayerID is zero the current user pays.
func (s *sharingService) buildExpensePayload(ctx context.Context, in expenseInput) (gateways.CreateExpensePayload, []domain.ShareAllocation, error) {
	user, err := s.gateway.GetCurrentUser(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch current user")
		return gateways.CreateExpensePayload{}, nil, err
	}

	participants := in.Participants
	if !containsID(participants, user.UserID) {
		participants = append([]int64{user.UserID}, participants...)
	}

	payerID := in.PayerID
	if payerID == 0 {
		payerID = user.UserID
	}

	allocations, err := ledger.SplitEqually(in.Cost, payerID, participants)
	if err != nil {
		return gateways.CreateExpensePayload{}, nil, err
	}

	currencyCode := in.CurrencyCode
	if currencyCode == "" {
		currencyCode = defaultCurrencyCode
	}

	date := in.Date
	if date == "" {
		date = s.now().UTC().Format(ledger.DateLayout)
	} else {
		resolved, fellBack := ledger.ResolveDate(date, s.now())
		if fellBack {
			s.LogWarn(ctx, "Unparseable expense date fell back to today", slog.String("input", in.Date))
		}
		date = resolved
	}

	return gateways.CreateExpensePayload{
		Cost:         in.Cost,
		Description:  in.Description,
		CurrencyCode: currencyCode,
		GroupID:      in.GroupID,
		Date:         date,
		Allocations:  allocations,
	}, allocations, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
