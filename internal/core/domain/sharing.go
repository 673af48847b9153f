package domain

import "github.com/shopspring/decimal"

// ShareAllocation is one participant's owed and paid portions of a shared
// expense. Allocations are ephemeral; they are computed per expense and
// handed straight to the shared-expense service.
type ShareAllocation struct {
	ParticipantID int64           `json:"participantID"`
	OwedShare     decimal.Decimal `json:"owedShare"`
	PaidShare     decimal.Decimal `json:"paidShare"`
}

// CurrencyAmount is a signed amount in one currency.
type CurrencyAmount struct {
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
}

// Friend is the normalized shape of a shared-expense service friend record.
// Positive balance amounts mean the friend owes the user; negative means the
// user owes the friend. Field-name variants from the remote service are
// resolved at the client boundary, never here.
type Friend struct {
	FriendID int64            `json:"friendID"`
	Name     string           `json:"name"`
	Balances []CurrencyAmount `json:"balances"`
}

// FriendBalanceEntry is one nonzero per-friend, per-currency balance after
// aggregation.
type FriendBalanceEntry struct {
	FriendID     int64           `json:"friendID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"` // Magnitude; direction is given by the list it sits in
}

// CurrencyTotals accumulates directional totals for one currency. Net is the
// signed sum; OwedToYou and YouOwe are positive magnitudes.
type CurrencyTotals struct {
	OwedToYou decimal.Decimal `json:"owedToYou"`
	YouOwe    decimal.Decimal `json:"youOwe"`
	Net       decimal.Decimal `json:"net"`
}

// NetBalances is the collapsed view of all per-friend, per-currency balances.
type NetBalances struct {
	OwedToYou        []FriendBalanceEntry      `json:"owedToYou"`
	YouOwe           []FriendBalanceEntry      `json:"youOwe"`
	TotalsByCurrency map[string]CurrencyTotals `json:"totalsByCurrency"`
}
