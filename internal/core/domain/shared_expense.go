package domain

import "github.com/shopspring/decimal"

// SplitwiseUser identifies the authenticated user on the shared-expense
// service.
type SplitwiseUser struct {
	UserID int64  `json:"userID"`
	Name   string `json:"name"`
}

// SharedExpense is the normalized shape of a shared-expense service expense
// record.
type SharedExpense struct {
	ExpenseID    int64             `json:"expenseID"`
	Description  string            `json:"description"`
	Cost         decimal.Decimal   `json:"cost"`
	CurrencyCode string            `json:"currencyCode"`
	Date         string            `json:"date"`
	GroupID      int64             `json:"groupID"`
	Users        []ShareAllocation `json:"users"`
	Deleted      bool              `json:"deleted"`
}

// SharedGroup is a group of users on the shared-expense service.
type SharedGroup struct {
	GroupID int64   `json:"groupID"`
	Name    string  `json:"name"`
	Members []int64 `json:"members"`
}

// SharedCategory is an expense category defined by the shared-expense
// service (distinct from local transaction categories).
type SharedCategory struct {
	CategoryID int64  `json:"categoryID"`
	Name       string `json:"name"`
}

// Currency is a currency known to the shared-expense service.
type Currency struct {
	Code string `json:"code"`
	Unit string `json:"unit"`
}

// Notification is an activity item from the shared-expense service.
type Notification struct {
	NotificationID int64  `json:"notificationID"`
	Content        string `json:"content"`
	CreatedAt      string `json:"createdAt"`
}
