package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"morisco/internal/domain/attendance"
	"morisco/internal/domain/staff"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) EmployeeByID(ctx context.Context, employeeID string) (*staff.Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, phone, daily_wage, hire_date, avatar_url, created_at, updated_at
    FROM employees
    WHERE id = $1
  `, employeeID)

	var employee staff.Employee
	err := row.Scan(&employee.ID, &employee.Name, &employee.Phone, &employee.DailyWage, &employee.HireDate, &employee.AvatarURL, &employee.CreatedAt, &employee.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// PresentDays returns the employee's present-status attendance rows inside
// the inclusive range. Absent and late rows do not count toward pay.
func (s *Store) PresentDays(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, date, status, time_in, time_out, notes, created_at
    FROM attendance
    WHERE employee_id = $1 AND date >= $2 AND date <= $3 AND status = $4
    ORDER BY date
  `, employeeID, start, end, attendance.StatusPresent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var record attendance.Record
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.Date, &record.Status, &record.TimeIn, &record.TimeOut, &record.Notes, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) Withdrawals(ctx context.Context, employeeID string, start, end time.Time) ([]staff.Withdrawal, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, amount, date, description, created_at
    FROM employee_withdrawals
    WHERE employee_id = $1 AND date >= $2 AND date <= $3
    ORDER BY date
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	withdrawals := make([]staff.Withdrawal, 0)
	for rows.Next() {
		var w staff.Withdrawal
		if err := rows.Scan(&w.ID, &w.EmployeeID, &w.Amount, &w.Date, &w.Description, &w.CreatedAt); err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}
