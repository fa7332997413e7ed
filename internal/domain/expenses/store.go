package expenses

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, description string, amount decimal.Decimal, category string, date time.Time) (*Expense, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO expenses (description, amount, category, date)
    VALUES ($1, $2, $3, $4)
    RETURNING id, description, amount, category, date, created_at
  `, description, amount, category, date)

	var expense Expense
	if err := row.Scan(&expense.ID, &expense.Description, &expense.Amount, &expense.Category, &expense.Date, &expense.CreatedAt); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *Store) List(ctx context.Context) ([]Expense, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, description, amount, category, date, created_at
    FROM expenses
    ORDER BY date DESC, created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Expense, 0)
	for rows.Next() {
		var expense Expense
		if err := rows.Scan(&expense.ID, &expense.Description, &expense.Amount, &expense.Category, &expense.Date, &expense.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, expense)
	}
	return list, rows.Err()
}

func (s *Store) MonthTotal(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	var total decimal.Decimal
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(amount), 0)
    FROM expenses
    WHERE date >= $1 AND date <= $2
  `, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
