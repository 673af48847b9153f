package ledger_test

import (
	"testing"

	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func friend(id int64, name string, balances ...domain.CurrencyAmount) domain.Friend {
	return domain.Friend{FriendID: id, Name: name, Balances: balances}
}

func inr(amount float64) domain.CurrencyAmount {
	return domain.CurrencyAmount{CurrencyCode: "INR", Amount: decimal.NewFromFloat(amount)}
}

func TestAggregateFriendBalances_Directions(t *testing.T) {
	result := ledger.AggregateFriendBalances([]domain.Friend{
		friend(1, "Asha", inr(250.75)),
		friend(2, "Ravi", inr(-120.25)),
		friend(3, "Mina", inr(0)),
	})

	require.Len(t, result.OwedToYou, 1)
	assert.Equal(t, int64(1), result.OwedToYou[0].FriendID)
	assert.True(t, result.OwedToYou[0].Amount.Equal(decimal.NewFromFloat(250.75)))

	require.Len(t, result.YouOwe, 1)
	assert.Equal(t, int64(2), result.YouOwe[0].FriendID)
	assert.True(t, result.YouOwe[0].Amount.Equal(decimal.NewFromFloat(120.25)), "you-owe entries carry positive magnitudes")

	totals := result.TotalsByCurrency["INR"]
	assert.True(t, totals.OwedToYou.Equal(decimal.NewFromFloat(250.75)))
	assert.True(t, totals.YouOwe.Equal(decimal.NewFromFloat(120.25)))
	assert.True(t, totals.Net.Equal(decimal.NewFromFloat(130.50)))
}

func TestAggregateFriendBalances_ZeroEntriesDroppedEverywhere(t *testing.T) {
	result := ledger.AggregateFriendBalances([]domain.Friend{
		friend(1, "Asha", inr(0)),
	})
	assert.Empty(t, result.OwedToYou)
	assert.Empty(t, result.YouOwe)
	assert.Empty(t, result.TotalsByCurrency, "a zero entry must not create a currency bucket")
}

func TestAggregateFriendBalances_MultiCurrency(t *testing.T) {
	usd := func(amount float64) domain.CurrencyAmount {
		return domain.CurrencyAmount{CurrencyCode: "USD", Amount: decimal.NewFromFloat(amount)}
	}
	result := ledger.AggregateFriendBalances([]domain.Friend{
		friend(1, "Asha", inr(100), usd(-45.50)),
		friend(2, "Ravi", usd(20)),
	})

	require.Len(t, result.TotalsByCurrency, 2)
	assert.True(t, result.TotalsByCurrency["INR"].Net.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.TotalsByCurrency["USD"].Net.Equal(decimal.NewFromFloat(-25.50)))
}

func TestAggregateFriendBalances_NetIsSignedDifference(t *testing.T) {
	result := ledger.AggregateFriendBalances([]domain.Friend{
		friend(1, "A", inr(10.105)),
		friend(2, "B", inr(10.105)),
		friend(3, "C", inr(-0.004)),
	})

	totals := result.TotalsByCurrency["INR"]
	// Accumulation is unrounded; rounding happens once at output.
	assert.True(t, totals.OwedToYou.Equal(decimal.NewFromFloat(20.21)))
	assert.True(t, totals.YouOwe.Equal(decimal.Zero.Round(2)))
	assert.True(t, totals.Net.Equal(totals.OwedToYou.Sub(totals.YouOwe)))
}

func TestAggregateFriendBalances_SortedDescendingByMagnitude(t *testing.T) {
	result := ledger.AggregateFriendBalances([]domain.Friend{
		friend(1, "A", inr(5)),
		friend(2, "B", inr(500)),
		friend(3, "C", inr(50)),
		friend(4, "D", inr(-3)),
		friend(5, "E", inr(-300)),
	})

	require.Len(t, result.OwedToYou, 3)
	assert.Equal(t, int64(2), result.OwedToYou[0].FriendID)
	assert.Equal(t, int64(3), result.OwedToYou[1].FriendID)
	assert.Equal(t, int64(1), result.OwedToYou[2].FriendID)

	require.Len(t, result.YouOwe, 2)
	assert.Equal(t, int64(5), result.YouOwe[0].FriendID)
	assert.Equal(t, int64(4), result.YouOwe[1].FriendID)
}
