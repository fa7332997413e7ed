package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"morisco/internal/domain/staff"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Mark writes or replaces the attendance row for (employeeID, date). The
// time-in is set to now unless the status is absent, and time-out is always
// cleared. Returns the stored row joined with the employee.
func (s *Store) Mark(ctx context.Context, employeeID string, date time.Time, status string, now time.Time) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, status, time_in, time_out)
    VALUES ($1, $2, $3, $4, NULL)
    ON CONFLICT (employee_id, date)
    DO UPDATE SET status = EXCLUDED.status, time_in = EXCLUDED.time_in, time_out = NULL
    RETURNING id, employee_id, date, status, time_in, time_out, notes, created_at
  `, employeeID, date, status, TimeInFor(status, now))

	var record Record
	err := row.Scan(&record.ID, &record.EmployeeID, &record.Date, &record.Status, &record.TimeIn, &record.TimeOut, &record.Notes, &record.CreatedAt)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	record.Employee = employee
	return &record, nil
}

func (s *Store) ListByDate(ctx context.Context, date time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.employee_id, a.date, a.status, a.time_in, a.time_out, a.notes, a.created_at,
           e.id, e.name, e.phone, e.daily_wage, e.hire_date, e.avatar_url, e.created_at, e.updated_at
    FROM attendance a
    JOIN employees e ON a.employee_id = e.id
    WHERE a.date = $1
    ORDER BY a.created_at DESC
  `, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var record Record
		var employee staff.Employee
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.Status, &record.TimeIn, &record.TimeOut, &record.Notes, &record.CreatedAt,
			&employee.ID, &employee.Name, &employee.Phone, &employee.DailyWage, &employee.HireDate, &employee.AvatarURL, &employee.CreatedAt, &employee.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		record.Employee = &employee
		records = append(records, record)
	}
	return records, rows.Err()
}

// MonthRegister lists every attendance row inside the month, ordered for
// the register export.
func (s *Store) MonthRegister(ctx context.Context, year int, month time.Month) ([]RegisterRow, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	rows, err := s.DB.Query(ctx, `
    SELECT e.name, a.date, a.status, a.time_in, a.time_out
    FROM attendance a
    JOIN employees e ON a.employee_id = e.id
    WHERE a.date >= $1 AND a.date <= $2
    ORDER BY a.date, e.name
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	register := make([]RegisterRow, 0)
	for rows.Next() {
		var row RegisterRow
		if err := rows.Scan(&row.EmployeeName, &row.Date, &row.Status, &row.TimeIn, &row.TimeOut); err != nil {
			return nil, err
		}
		register = append(register, row)
	}
	return register, rows.Err()
}

func (s *Store) employeeByID(ctx context.Context, employeeID string) (*staff.Employee, error) {
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
