package debts

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerSummary is a customer with their debts and outstanding balance.
type CustomerSummary struct {
	Customer
	Debts       []Debt          `json:"debts"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

type Debt struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}
