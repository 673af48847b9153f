package ledger

import (
	"fmt"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// centTolerance bounds the post-condition check on a split's totals.
var centTolerance = decimal.New(1, -2) // 0.01

// SplitEqually allocates a cost equally across the given participants so that
// the owed shares sum back to the cost exactly, with no floating-point drift.
//
// The cost is converted to integer minor units by rounding to the nearest
// cent, divided by the participant count with integer floor division to get a
// base share, and the remainder (total minor units minus base times n) is
// assigned to the LAST participant in the given order on top of its base
// share. Swapping participant order therefore changes who absorbs the odd
// cents. The payer's paid share is the full cost; everyone else pays zero.
//
// Returns apperrors.ErrValidation when the participant list is empty, and
// apperrors.ErrReconciliation if the shares fail to sum back to the cost
// within one cent (a programming defect, unreachable for valid inputs).
func SplitEqually(cost decimal.Decimal, payerID int64, participantIDs []int64) ([]domain.ShareAllocation, error) {
	if len(participantIDs) == 0 {
		return nil, fmt.Errorf("%w: participant list must not be empty", apperrors.ErrValidation)
	}
	payerIncluded := false
	for _, id := range participantIDs {
		if id == payerID {
			payerIncluded = true
			break
		}
	}
	if !payerIncluded {
		return nil, fmt.Errorf("%w: payer %d is not among the participants", apperrors.ErrValidation, payerID)
	}

	rounded := cost.Round(2)
	totalMinor := rounded.Shift(2).IntPart()
	n := int64(len(participantIDs))
	base := totalMinor / n
	remainder := totalMinor - base*n

	allocations := make([]domain.ShareAllocation, len(participantIDs))
	for i, id := range participantIDs {
		owedMinor := base
		if i == len(participantIDs)-1 {
			owedMinor = base + remainder
		}
		paid := decimal.Zero
		if id == payerID {
			paid = rounded
		}
		allocations[i] = domain.ShareAllocation{
			ParticipantID: id,
			OwedShare:     decimal.New(owedMinor, -2),
			PaidShare:     paid,
		}
	}

	if err := checkReconciliation(cost, allocations); err != nil {
		return nil, err
	}
	return allocations, nil
}

// checkReconciliation verifies Σowed and Σpaid both land within one cent of
// the original cost.
func checkReconciliation(cost decimal.Decimal, allocations []domain.ShareAllocation) error {
	owedSum := decimal.Zero
	paidSum := decimal.Zero
	for _, a := range allocations {
		owedSum = owedSum.Add(a.OwedShare)
		paidSum = paidSum.Add(a.PaidShare)
	}
	if owedSum.Sub(cost).Abs().GreaterThan(centTolerance) {
		return fmt.Errorf("%w: owed shares sum to %s for cost %s", apperrors.ErrReconciliation, owedSum, cost)
	}
	if paidSum.Sub(cost).Abs().GreaterThan(centTolerance) {
		return fmt.Errorf("%w: paid shares sum to %s for cost %s", apperrors.ErrReconciliation, paidSum, cost)
	}
	return nil
}
