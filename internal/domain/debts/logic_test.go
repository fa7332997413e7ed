package debts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		paid   int64
		want   string
	}{
		{name: "nothing paid", amount: 100, paid: 0, want: StatusPending},
		{name: "part paid", amount: 100, paid: 40, want: StatusPartial},
		{name: "exactly paid", amount: 100, paid: 100, want: StatusPaid},
		{name: "overpaid", amount: 100, paid: 130, want: StatusPaid},
		{name: "one unit short", amount: 100, paid: 99, want: StatusPartial},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(dec(tc.amount), dec(tc.paid)))
		})
	}
}

func TestPaymentAccumulation(t *testing.T) {
	amount := dec(100)
	paid := decimal.Zero

	paid = paid.Add(dec(40))
	assert.Equal(t, StatusPartial, StatusFor(amount, paid))
	assert.True(t, paid.Equal(dec(40)))

	paid = paid.Add(dec(60))
	assert.Equal(t, StatusPaid, StatusFor(amount, paid))
	assert.True(t, paid.Equal(dec(100)))
}

func TestOutstandingExcludesPaidDebts(t *testing.T) {
	list := []Debt{
		{Amount: dec(100), PaidAmount: dec(100), Status: StatusPaid},
		{Amount: dec(50), PaidAmount: dec(0), Status: StatusPending},
	}
	assert.True(t, Outstanding(list).Equal(dec(50)))
}

func TestOutstandingCountsPartialRemainder(t *testing.T) {
	list := []Debt{
		{Amount: dec(200), PaidAmount: dec(75), Status: StatusPartial},
		{Amount: dec(30), PaidAmount: dec(0), Status: StatusPending},
	}
	assert.True(t, Outstanding(list).Equal(dec(155)))
}

func TestOutstandingEmpty(t *testing.T) {
	assert.True(t, Outstanding(nil).IsZero())
}
