package debts

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidPayment = errors.New("payment amount must be positive")

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// ApplyPayment adds a payment onto a debt. Payments accumulate and are not
// capped at the debt amount; the status is recomputed and persisted in the
// same write.
func (s *Service) ApplyPayment(ctx context.Context, debtID string, payment decimal.Decimal) (*Debt, error) {
	if !payment.IsPositive() {
		return nil, ErrInvalidPayment
	}

	debt, err := s.Store.DebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	newPaid := debt.PaidAmount.Add(payment)
	return s.Store.UpdatePayment(ctx, debtID, newPaid, StatusFor(debt.Amount, newPaid))
}

// CustomerSummaries joins every customer with their debts and outstanding
// balance, the shape the customer list screen renders.
func (s *Service) CustomerSummaries(ctx context.Context) ([]CustomerSummary, error) {
	customers, err := s.Store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	debts, err := s.Store.ListDebts(ctx)
	if err != nil {
		return nil, err
	}

	byCustomer := make(map[string][]Debt, len(customers))
	for _, debt := range debts {
		byCustomer[debt.CustomerID] = append(byCustomer[debt.CustomerID], debt)
	}

	summaries := make([]CustomerSummary, 0, len(customers))
	for _, customer := range customers {
		owned := byCustomer[customer.ID]
		if owned == nil {
			owned = make([]Debt, 0)
		}
		summaries = append(summaries, CustomerSummary{
			Customer:    customer,
			Debts:       owned,
			Outstanding: Outstanding(owned),
		})
	}
	return summaries, nil
}
