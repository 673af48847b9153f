package ledger

import (
	"strings"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
)

// MatchAccount fuzzy-matches a free-text name against the given accounts.
// Matching order, first hit wins: case-insensitive exact equality, then a
// case-insensitive substring match in either direction (candidate contains
// query or query contains candidate) in the order the accounts were given.
// The boolean result distinguishes no-match; callers surface the active
// account names as a hint in that case.
func MatchAccount(name string, accounts []domain.Account) (domain.Account, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	for _, acc := range accounts {
		if strings.ToLower(acc.Name) == query {
			return acc, true
		}
	}
	for _, acc := range accounts {
		candidate := strings.ToLower(acc.Name)
		if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
			return acc, true
		}
	}
	return domain.Account{}, false
}

// AccountNames lists the names of the given accounts, preserving order. Used
// to build the available-accounts hint on a failed match.
func AccountNames(accounts []domain.Account) []string {
	names := make([]string, len(accounts))
	for i, acc := range accounts {
		names[i] = acc.Name
	}
	return names
}
