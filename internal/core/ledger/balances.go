package ledger

import (
	"sort"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
)

// AggregateFriendBalances collapses per-friend, per-currency balance records
// into two directional lists plus per-currency totals. Zero-amount entries
// are dropped entirely; positive amounts land in OwedToYou and negative
// amounts in YouOwe as positive magnitudes. Totals accumulate with unrounded
// decimal arithmetic and are rounded to two decimal places only at output, so
// rounding error never compounds across friends. Both lists come back sorted
// descending by amount magnitude; no ordering beyond that is guaranteed.
func AggregateFriendBalances(friends []domain.Friend) domain.NetBalances {
	result := domain.NetBalances{
		OwedToYou:        []domain.FriendBalanceEntry{},
		YouOwe:           []domain.FriendBalanceEntry{},
		TotalsByCurrency: make(map[string]domain.CurrencyTotals),
	}

	for _, friend := range friends {
		for _, balance := range friend.Balances {
			if balance.Amount.IsZero() {
				continue
			}
			totals := result.TotalsByCurrency[balance.CurrencyCode]
			totals.Net = totals.Net.Add(balance.Amount)
			entry := domain.FriendBalanceEntry{
				FriendID:     friend.FriendID,
				Name:         friend.Name,
				CurrencyCode: balance.CurrencyCode,
			}
			if balance.Amount.IsPositive() {
				entry.Amount = balance.Amount
				totals.OwedToYou = totals.OwedToYou.Add(balance.Amount)
				result.OwedToYou = append(result.OwedToYou, entry)
			} else {
				entry.Amount = balance.Amount.Abs()
				totals.YouOwe = totals.YouOwe.Add(balance.Amount.Abs())
				result.YouOwe = append(result.YouOwe, entry)
			}
			result.TotalsByCurrency[balance.CurrencyCode] = totals
		}
	}

	sortEntriesDesc(result.OwedToYou)
	sortEntriesDesc(result.YouOwe)

	for code, totals := range result.TotalsByCurrency {
		totals.OwedToYou = totals.OwedToYou.Round(2)
		totals.YouOwe = totals.YouOwe.Round(2)
		totals.Net = totals.Net.Round(2)
		result.TotalsByCurrency[code] = totals
	}
	return result
}

func sortEntriesDesc(entries []domain.FriendBalanceEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Amount.GreaterThan(entries[j].Amount)
	})
}
