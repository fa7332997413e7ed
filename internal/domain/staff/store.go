package staff

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateEmployee(ctx context.Context, name, phone string, dailyWage decimal.Decimal, hireDate time.Time) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, phone, daily_wage, hire_date)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, phone, daily_wage, hire_date, avatar_url, created_at, updated_at
  `, name, phone, dailyWage, hireDate)
	return scanEmployee(row)
}

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, phone, daily_wage, hire_date, avatar_url, created_at, updated_at
    FROM employees
    WHERE id = $1
  `, employeeID)
	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	return emp, err
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, phone, daily_wage, hire_date, avatar_url, created_at, updated_at
    FROM employees
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]Employee, 0)
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Phone, &emp.DailyWage, &emp.HireDate, &emp.AvatarURL, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) UpdateEmployee(ctx context.Context, employeeID, name, phone string, dailyWage decimal.Decimal) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE employees
    SET name = $2, phone = $3, daily_wage = $4, updated_at = now()
    WHERE id = $1
    RETURNING id, name, phone, daily_wage, hire_date, avatar_url, created_at, updated_at
  `, employeeID, name, phone, dailyWage)
	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	return emp, err
}

func (s *Store) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) CreateWithdrawal(ctx context.Context, employeeID string, amount decimal.Decimal, date time.Time, description string) (*Withdrawal, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employee_withdrawals (employee_id, amount, date, description)
    VALUES ($1, $2, $3, $4)
    RETURNING id, employee_id, amount, date, description, created_at
  `, employeeID, amount, date, description)

	var w Withdrawal
	if err := row.Scan(&w.ID, &w.EmployeeID, &w.Amount, &w.Date, &w.Description, &w.CreatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Store) ListWithdrawals(ctx context.Context, employeeID string) ([]Withdrawal, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, amount, date, description, created_at
    FROM employee_withdrawals
    WHERE employee_id = $1
    ORDER BY date DESC, created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	withdrawals := make([]Withdrawal, 0)
	for rows.Next() {
		var w Withdrawal
		if err := rows.Scan(&w.ID, &w.EmployeeID, &w.Amount, &w.Date, &w.Description, &w.CreatedAt); err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Phone, &emp.DailyWage, &emp.HireDate, &emp.AvatarURL, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
