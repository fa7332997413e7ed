package debts

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrDebtNotFound     = errors.New("debt not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateCustomer(ctx context.Context, name, phone, email string) (*Customer, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO customers (name, phone, email)
    VALUES ($1, $2, $3)
    RETURNING id, name, phone, email, created_at
  `, name, phone, email)

	var customer Customer
	if err := row.Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.Email, &customer.CreatedAt); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, phone, email, created_at
    FROM customers
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]Customer, 0)
	for rows.Next() {
		var customer Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.Email, &customer.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (s *Store) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM customers WHERE id = $1", customerID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateDebt(ctx context.Context, customerID string, amount decimal.Decimal, description string, date time.Time) (*Debt, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO debts (customer_id, amount, description, date, paid_amount, status)
    VALUES ($1, $2, $3, $4, 0, $5)
    RETURNING id, customer_id, amount, description, date, paid_amount, status, created_at
  `, customerID, amount, description, date, StatusPending)
	return scanDebt(row)
}

func (s *Store) DebtByID(ctx context.Context, debtID string) (*Debt, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, customer_id, amount, description, date, paid_amount, status, created_at
    FROM debts
    WHERE id = $1
  `, debtID)
	debt, err := scanDebt(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDebtNotFound
	}
	return debt, err
}

func (s *Store) ListDebts(ctx context.Context) ([]Debt, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, customer_id, amount, description, date, paid_amount, status, created_at
    FROM debts
    ORDER BY date DESC, created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDebts(rows)
}

func (s *Store) ListCustomerDebts(ctx context.Context, customerID string) ([]Debt, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, customer_id, amount, description, date, paid_amount, status, created_at
    FROM debts
    WHERE customer_id = $1
    ORDER BY date DESC, created_at DESC
  `, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDebts(rows)
}

// UpdatePayment persists a recomputed paid amount and status in one write.
func (s *Store) UpdatePayment(ctx context.Context, debtID string, paidAmount decimal.Decimal, status string) (*Debt, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE debts
    SET paid_amount = $2, status = $3
    WHERE id = $1
    RETURNING id, customer_id, amount, description, date, paid_amount, status, created_at
  `, debtID, paidAmount, status)
	debt, err := scanDebt(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDebtNotFound
	}
	return debt, err
}

func scanDebt(row pgx.Row) (*Debt, error) {
	var debt Debt
	err := row.Scan(&debt.ID, &debt.CustomerID, &debt.Amount, &debt.Description, &debt.Date, &debt.PaidAmount, &debt.Status, &debt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

func collectDebts(rows pgx.Rows) ([]Debt, error) {
	list := make([]Debt, 0)
	for rows.Next() {
		var debt Debt
		if err := rows.Scan(&debt.ID, &debt.CustomerID, &debt.Amount, &debt.Description, &debt.Date, &debt.PaidAmount, &debt.Status, &debt.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, debt)
	}
	return list, rows.Err()
}
