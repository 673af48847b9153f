package splitwise

import (
	"fmt"
	"strings"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Wire shapes mirror the service's JSON loosely. The service is
// inconsistent between endpoints (name vs first/last name, balance vs
// balances), so each wire type carries the variants and the normalizers
// below pick whichever is populated.

type wireUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
}

type wireBalance struct {
	CurrencyCode string `json:"currency_code"`
	Amount       string `json:"amount"`
}

type wireFriend struct {
	ID        int64         `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Name      string        `json:"name"`
	Balance   []wireBalance `json:"balance"`
	Balances  []wireBalance `json:"balances"`
}

type wireExpenseUser struct {
	User      *wireUser `json:"user"`
	UserID    int64     `json:"user_id"`
	PaidShare string    `json:"paid_share"`
	OwedShare string    `json:"owed_share"`
}

type wireExpense struct {
	ID           int64             `json:"id"`
	Description  string            `json:"description"`
	Cost         string            `json:"cost"`
	CurrencyCode string            `json:"currency_code"`
	Date         string            `json:"date"`
	GroupID      int64             `json:"group_id"`
	Users        []wireExpenseUser `json:"users"`
	DeletedAt    string            `json:"deleted_at"`
}

type wireGroupMember struct {
	ID int64 `json:"id"`
}

type wireGroup struct {
	ID      int64             `json:"id"`
	Name    string            `json:"name"`
	Members []wireGroupMember `json:"members"`
}

type wireCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type wireCurrency struct {
	CurrencyCode string `json:"currency_code"`
	Unit         string `json:"unit"`
}

type wireNotification struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// displayName joins whichever name fields the service sent.
func displayName(name, firstName, lastName string) string {
	if name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}

// parseAmount reads the service's string-encoded decimal amounts. Empty
// means zero.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: unparsable amount %q", apperrors.ErrUpstream, s)
	}
	return amount, nil
}

func userFromWire(w wireUser) domain.SplitwiseUser {
	return domain.SplitwiseUser{
		UserID: w.ID,
		Name:   displayName(w.Name, w.FirstName, w.LastName),
	}
}

func friendFromWire(w wireFriend) (domain.Friend, error) {
	rawBalances := w.Balance
	if len(rawBalances) == 0 {
		rawBalances = w.Balances
	}
	balances := make([]domain.CurrencyAmount, 0, len(rawBalances))
	for _, b := range rawBalances {
		amount, err := parseAmount(b.Amount)
		if err != nil {
			return domain.Friend{}, err
		}
		balances = append(balances, domain.CurrencyAmount{
			CurrencyCode: b.CurrencyCode,
			Amount:       amount,
		})
	}
	return domain.Friend{
		FriendID: w.ID,
		Name:     displayName(w.Name, w.FirstName, w.LastName),
		Balances: balances,
	}, nil
}

func expenseFromWire(w wireExpense) (domain.SharedExpense, error) {
	cost, err := parseAmount(w.Cost)
	if err != nil {
		return domain.SharedExpense{}, err
	}
	users := make([]domain.ShareAllocation, 0, len(w.Users))
	for _, wu := range w.Users {
		userID := wu.UserID
		if userID == 0 && wu.User != nil {
			userID = wu.User.ID
		}
		paid, err := parseAmount(wu.PaidShare)
		if err != nil {
			return domain.SharedExpense{}, err
		}
		owed, err := parseAmount(wu.OwedShare)
		if err != nil {
			return domain.SharedExpense{}, err
		}
		users = append(users, domain.ShareAllocation{
			ParticipantID: userID,
			OwedShare:     owed,
			PaidShare:     paid,
		})
	}
	return domain.SharedExpense{
		ExpenseID:    w.ID,
		Description:  w.Description,
		Cost:         cost,
		CurrencyCode: w.CurrencyCode,
		Date:         w.Date,
		GroupID:      w.GroupID,
		Users:        users,
		Deleted:      w.DeletedAt != "",
	}, nil
}

func groupFromWire(w wireGroup) domain.SharedGroup {
	members := make([]int64, 0, len(w.Members))
	for _, m := range w.Members {
		members = append(members, m.ID)
	}
	return domain.SharedGroup{
		GroupID: w.ID,
		Name:    w.Name,
		Members: members,
	}
}
