package dashboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"morisco/internal/domain/attendance"
	"morisco/internal/domain/debts"
	"morisco/internal/domain/expenses"
)

type Store struct {
	DB       *pgxpool.Pool
	expenses *expenses.Store
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db, expenses: expenses.NewStore(db)}
}

func (s *Store) EmployeeCount(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count)
	return count, err
}

func (s *Store) CustomerCount(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM customers").Scan(&count)
	return count, err
}

func (s *Store) AttendanceSummary(ctx context.Context, date time.Time) (attendance.Summary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT status, COUNT(1)
    FROM attendance
    WHERE date = $1
    GROUP BY status
  `, date)
	if err != nil {
		return attendance.Summary{}, err
	}
	defer rows.Close()

	var summary attendance.Summary
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return attendance.Summary{}, err
		}
		switch status {
		case attendance.StatusPresent:
			summary.Present = count
		case attendance.StatusAbsent:
			summary.Absent = count
		case attendance.StatusLate:
			summary.Late = count
		}
	}
	return summary, rows.Err()
}

func (s *Store) MonthExpenseTotal(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	return s.expenses.MonthTotal(ctx, year, month)
}

func (s *Store) OutstandingDebtTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(amount - paid_amount), 0)
    FROM debts
    WHERE status <> $1
  `, debts.StatusPaid).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
