package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Generate aggregates an employee's wage report over the inclusive range.
// Either read failing aborts the whole report.
func (s *Service) Generate(ctx context.Context, employeeID string, start, end time.Time) (*Report, error) {
	employee, err := s.store.EmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	presentDays, err := s.store.PresentDays(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch attendance: %w", err)
	}

	withdrawals, err := s.store.Withdrawals(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch withdrawals: %w", err)
	}

	report := BuildReport(*employee, start, end, presentDays, withdrawals)
	return &report, nil
}

// RenderPDF renders a downloadable copy of the report.
func (s *Service) RenderPDF(report *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employee Wage Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", report.Employee.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", report.StartDate.Format("2006-01-02"), report.EndDate.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Daily wage: %s", report.Employee.DailyWage.StringFixed(2)))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Days worked: %d", report.WorkDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total earned: %s", report.TotalEarned.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total withdrawals: %s", report.TotalWithdrawals.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Remaining: %s", report.Remaining.StringFixed(2)))

	if len(report.Withdrawals) > 0 {
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Withdrawals")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, w := range report.Withdrawals {
			line := fmt.Sprintf("%s  %s", w.Date.Format("2006-01-02"), w.Amount.StringFixed(2))
			if w.Description != "" {
				line += "  " + w.Description
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
