package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"morisco/internal/domain/attendance"
)

type Overview struct {
	Employees       int                `json:"employees"`
	Customers       int                `json:"customers"`
	TodayAttendance attendance.Summary `json:"todayAttendance"`
	MonthExpenses   decimal.Decimal    `json:"monthExpenses"`
	OutstandingDebt decimal.Decimal    `json:"outstandingDebt"`
}

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) Overview(ctx context.Context, now time.Time) (*Overview, error) {
	employees, err := s.Store.EmployeeCount(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := s.Store.CustomerCount(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	summary, err := s.Store.AttendanceSummary(ctx, today)
	if err != nil {
		return nil, err
	}

	monthExpenses, err := s.Store.MonthExpenseTotal(ctx, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}

	outstanding, err := s.Store.OutstandingDebtTotal(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Employees:       employees,
		Customers:       customers,
		TodayAttendance: summary,
		MonthExpenses:   monthExpenses,
		OutstandingDebt: outstanding,
	}, nil
}
