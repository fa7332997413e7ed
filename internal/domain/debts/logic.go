package debts

import "github.com/shopspring/decimal"

// StatusFor is the single derivation point for a debt's status:
// paid when the paid amount covers the debt, partial when something but not
// everything has been paid, pending otherwise. Overpayment still reads as
// paid; the paid amount itself is never capped.
func StatusFor(amount, paid decimal.Decimal) string {
	switch {
	case paid.GreaterThanOrEqual(amount):
		return StatusPaid
	case paid.IsPositive():
		return StatusPartial
	default:
		return StatusPending
	}
}

// Outstanding sums the unpaid portion of every non-paid debt.
func Outstanding(list []Debt) decimal.Decimal {
	total := decimal.Zero
	for _, debt := range list {
		if debt.Status == StatusPaid {
			continue
		}
		total = total.Add(debt.Amount.Sub(debt.PaidAmount))
	}
	return total
}
