package ledger_test

import (
	"testing"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: "a1", Name: "HDFC Credit Card", Type: "credit_card", IsActive: true},
		{AccountID: "a2", Name: "HDFC Savings", Type: "bank", IsActive: true},
		{AccountID: "a3", Name: "Cash", Type: "cash", IsActive: true},
	}
}

func TestMatchAccount_ExactBeforeSubstring(t *testing.T) {
	// "hdfc savings" matches a2 exactly even though a1 also contains "hdfc".
	acc, ok := ledger.MatchAccount("hdfc savings", activeAccounts())
	require.True(t, ok)
	assert.Equal(t, "a2", acc.AccountID)
}

func TestMatchAccount_SubstringFirstHitWins(t *testing.T) {
	// Ambiguous substring query resolves to the first hit in the
	// collaborator-returned order; exactly one account comes back.
	acc, ok := ledger.MatchAccount("hdfc", activeAccounts())
	require.True(t, ok)
	assert.Equal(t, "a1", acc.AccountID)
}

func TestMatchAccount_QueryContainsCandidate(t *testing.T) {
	acc, ok := ledger.MatchAccount("paid with Cash yesterday", activeAccounts())
	require.True(t, ok)
	assert.Equal(t, "a3", acc.AccountID)
}

func TestMatchAccount_CaseInsensitive(t *testing.T) {
	acc, ok := ledger.MatchAccount("CASH", activeAccounts())
	require.True(t, ok)
	assert.Equal(t, "a3", acc.AccountID)
}

func TestMatchAccount_NoMatch(t *testing.T) {
	_, ok := ledger.MatchAccount("ICICI", activeAccounts())
	assert.False(t, ok)
}

func TestMatchAccount_EmptyAccountList(t *testing.T) {
	_, ok := ledger.MatchAccount("anything", nil)
	assert.False(t, ok)
}

func TestAccountNames(t *testing.T) {
	names := ledger.AccountNames(activeAccounts())
	assert.Equal(t, []string{"HDFC Credit Card", "HDFC Savings", "Cash"}, names)
}
