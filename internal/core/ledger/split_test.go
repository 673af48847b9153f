package ledger_test

import (
	"testing"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEqually_RemainderGoesToLastParticipant(t *testing.T) {
	// 100.00 across three participants: 10000 minor units, base 3333,
	// remainder 1 absorbed by the last participant in the given order.
	allocations, err := ledger.SplitEqually(decimal.NewFromFloat(100.00), 1, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, allocations, 3)

	assert.Equal(t, int64(1), allocations[0].ParticipantID)
	assert.True(t, allocations[0].OwedShare.Equal(decimal.NewFromFloat(33.33)), "got %s", allocations[0].OwedShare)
	assert.True(t, allocations[0].PaidShare.Equal(decimal.NewFromFloat(100.00)), "payer pays the full cost")

	assert.True(t, allocations[1].OwedShare.Equal(decimal.NewFromFloat(33.33)))
	assert.True(t, allocations[1].PaidShare.IsZero())

	assert.True(t, allocations[2].OwedShare.Equal(decimal.NewFromFloat(33.34)), "last participant absorbs the remainder")
	assert.True(t, allocations[2].PaidShare.IsZero())
}

func TestSplitEqually_OrderSensitivity(t *testing.T) {
	// Swapping participant order changes who absorbs the odd cent.
	allocations, err := ledger.SplitEqually(decimal.NewFromFloat(100.00), 1, []int64{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), allocations[2].ParticipantID)
	assert.True(t, allocations[2].OwedShare.Equal(decimal.NewFromFloat(33.34)))
	assert.True(t, allocations[0].OwedShare.Equal(decimal.NewFromFloat(33.33)))
}

func TestSplitEqually_SumsReconcileExactly(t *testing.T) {
	tests := []struct {
		name  string
		cost  float64
		payer int64
		ids   []int64
	}{
		{"even split", 90.00, 1, []int64{1, 2, 3}},
		{"one participant", 55.55, 7, []int64{7}},
		{"odd cents across seven", 100.00, 2, []int64{1, 2, 3, 4, 5, 6, 7}},
		{"sub-cent cost rounds first", 10.004, 1, []int64{1, 2, 3}},
		{"zero cost", 0, 1, []int64{1, 2}},
		{"tiny cost under participant count", 0.02, 1, []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := decimal.NewFromFloat(tt.cost)
			allocations, err := ledger.SplitEqually(cost, tt.payer, tt.ids)
			require.NoError(t, err)
			require.Len(t, allocations, len(tt.ids))

			owedSum := decimal.Zero
			paidSum := decimal.Zero
			for _, a := range allocations {
				owedSum = owedSum.Add(a.OwedShare)
				paidSum = paidSum.Add(a.PaidShare)
			}
			rounded := cost.Round(2)
			assert.True(t, owedSum.Equal(rounded), "owed sum %s must equal rounded cost %s", owedSum, rounded)
			assert.True(t, paidSum.Equal(rounded), "paid sum %s must equal rounded cost %s", paidSum, rounded)
		})
	}
}

func TestSplitEqually_AllButLastGetBaseShare(t *testing.T) {
	cost := decimal.NewFromFloat(17.77)
	ids := []int64{10, 20, 30, 40, 50, 60}
	allocations, err := ledger.SplitEqually(cost, 10, ids)
	require.NoError(t, err)

	// 1777 minor units over 6 participants: base 296, remainder 1.
	base := decimal.New(296, -2)
	for i := 0; i < len(allocations)-1; i++ {
		assert.True(t, allocations[i].OwedShare.Equal(base), "participant %d should get the base share", ids[i])
	}
	assert.True(t, allocations[len(allocations)-1].OwedShare.Equal(decimal.New(297, -2)))
}

func TestSplitEqually_EmptyParticipants(t *testing.T) {
	_, err := ledger.SplitEqually(decimal.NewFromFloat(10), 1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSplitEqually_PayerOutsideParticipants(t *testing.T) {
	// A payer missing from the participant list would leave the paid side
	// unreconcilable, so it is rejected as caller input error.
	allocations, err := ledger.SplitEqually(decimal.NewFromFloat(60.00), 1, []int64{2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, allocations)
}

func TestSplitEqually_AllocationShape(t *testing.T) {
	allocations, err := ledger.SplitEqually(decimal.NewFromFloat(30.00), 2, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []domain.ShareAllocation{
		{ParticipantID: 1, OwedShare: decimal.New(1500, -2), PaidShare: decimal.Zero},
		{ParticipantID: 2, OwedShare: decimal.New(1500, -2), PaidShare: decimal.New(30, 0)},
	}, allocations)
}
