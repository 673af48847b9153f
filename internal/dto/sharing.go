package dto

import (
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddSharedExpenseRequest creates an equally split expense on the
// shared-expense service. Participants are friend ids; the current user is
// always included as a participant and is the payer unless PayerID names a
// friend instead.
type AddSharedExpenseRequest struct {
	Cost         decimal.Decimal `json:"cost" validate:"required"`
	Description  string          `json:"description" validate:"required"`
	Participants []int64         `json:"participants" validate:"required,min=1"`
	PayerID      int64           `json:"payer_id"`
	CurrencyCode string          `json:"currency_code"`
	GroupID      int64           `json:"group_id"`
	Date         string          `json:"date"`
}

// UpdateSharedExpenseRequest re-splits and updates an existing shared
// expense.
type UpdateSharedExpenseRequest struct {
	ExpenseID    int64           `json:"expense_id" validate:"required"`
	Cost         decimal.Decimal `json:"cost" validate:"required"`
	Description  string          `json:"description" validate:"required"`
	Participants []int64         `json:"participants" validate:"required,min=1"`
	PayerID      int64           `json:"payer_id"`
	CurrencyCode string          `json:"currency_code"`
	GroupID      int64           `json:"group_id"`
	Date         string          `json:"date"`
}

// ListSharedExpensesRequest filters the shared-expense listing.
type ListSharedExpensesRequest struct {
	GroupID     int64  `json:"group_id"`
	FriendID    int64  `json:"friend_id"`
	DatedAfter  string `json:"dated_after"`
	DatedBefore string `json:"dated_before"`
	Limit       int    `json:"limit" validate:"omitempty,min=1"`
}

// GetSharedExpenseRequest fetches one shared expense by id.
type GetSharedExpenseRequest struct {
	ExpenseID int64 `json:"expense_id" validate:"required"`
}

// DeleteSharedExpenseRequest removes a shared expense by id.
type DeleteSharedExpenseRequest struct {
	ExpenseID int64 `json:"expense_id" validate:"required"`
}

// SettleDebtRequest records a direct settlement payment to a friend.
type SettleDebtRequest struct {
	FriendID     int64           `json:"friend_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	CurrencyCode string          `json:"currency_code"`
}

// GetNotificationsRequest limits the activity feed page size.
type GetNotificationsRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1"`
}

// ShareRow is one participant's allocation with tool-schema field names.
type ShareRow struct {
	ParticipantID int64           `json:"participant_id"`
	OwedShare     decimal.Decimal `json:"owed_share"`
	PaidShare     decimal.Decimal `json:"paid_share"`
}

// SharedExpenseResult confirms a created or updated shared expense along
// with its allocations.
type SharedExpenseResult struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Expense domain.SharedExpense `json:"expense"`
	Shares  []ShareRow           `json:"shares"`
}

// FriendBalanceRow is one directional balance entry.
type FriendBalanceRow struct {
	FriendID int64           `json:"friend_id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency_code"`
	Amount   decimal.Decimal `json:"amount"`
}

// CurrencyTotalsRow carries per-currency directional totals.
type CurrencyTotalsRow struct {
	OwedToYou decimal.Decimal `json:"owed_to_you"`
	YouOwe    decimal.Decimal `json:"you_owe"`
	Net       decimal.Decimal `json:"net"`
}

// FriendBalancesResult is the aggregated net-balance view.
type FriendBalancesResult struct {
	OwedToYou        []FriendBalanceRow           `json:"owed_to_you"`
	YouOwe           []FriendBalanceRow           `json:"you_owe"`
	TotalsByCurrency map[string]CurrencyTotalsRow `json:"totals_by_currency"`
}

// ToShareRows converts allocations into their tool payload shape.
func ToShareRows(allocations []domain.ShareAllocation) []ShareRow {
	rows := make([]ShareRow, len(allocations))
	for i, a := range allocations {
		rows[i] = ShareRow{ParticipantID: a.ParticipantID, OwedShare: a.OwedShare, PaidShare: a.PaidShare}
	}
	return rows
}

// ToFriendBalancesResult converts the aggregated domain balances into their
// tool payload shape.
func ToFriendBalancesResult(b domain.NetBalances) FriendBalancesResult {
	result := FriendBalancesResult{
		OwedToYou:        toFriendBalanceRows(b.OwedToYou),
		YouOwe:           toFriendBalanceRows(b.YouOwe),
		TotalsByCurrency: make(map[string]CurrencyTotalsRow, len(b.TotalsByCurrency)),
	}
	for code, totals := range b.TotalsByCurrency {
		result.TotalsByCurrency[code] = CurrencyTotalsRow{
			OwedToYou: totals.OwedToYou,
			YouOwe:    totals.YouOwe,
			Net:       totals.Net,
		}
	}
	return result
}

func toFriendBalanceRows(entries []domain.FriendBalanceEntry) []FriendBalanceRow {
	rows := make([]FriendBalanceRow, len(entries))
	for i, e := range entries {
		rows[i] = FriendBalanceRow{
			FriendID: e.FriendID,
			Name:     e.Name,
			Currency: e.CurrencyCode,
			Amount:   e.Amount,
		}
	}
	return rows
}
