package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"morisco/internal/domain/attendance"
	"morisco/internal/domain/staff"
)

func day(d int) time.Time {
	return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildReport(t *testing.T) {
	employee := staff.Employee{ID: "e1", Name: "Omar", DailyWage: decimal.NewFromInt(200)}

	presentDays := make([]attendance.Record, 0, 5)
	for d := 1; d <= 5; d++ {
		presentDays = append(presentDays, attendance.Record{
			EmployeeID: "e1",
			Date:       day(d),
			Status:     attendance.StatusPresent,
		})
	}
	withdrawals := []staff.Withdrawal{
		{EmployeeID: "e1", Amount: decimal.NewFromInt(100), Date: day(2)},
		{EmployeeID: "e1", Amount: decimal.NewFromInt(200), Date: day(4)},
	}

	report := BuildReport(employee, day(1), day(30), presentDays, withdrawals)

	assert.Equal(t, 5, report.WorkDays)
	assert.True(t, report.TotalEarned.Equal(decimal.NewFromInt(1000)), "earned %s", report.TotalEarned)
	assert.True(t, report.TotalWithdrawals.Equal(decimal.NewFromInt(300)), "withdrawn %s", report.TotalWithdrawals)
	assert.True(t, report.Remaining.Equal(decimal.NewFromInt(700)), "remaining %s", report.Remaining)
}

func TestBuildReportNegativeRemaining(t *testing.T) {
	employee := staff.Employee{ID: "e1", DailyWage: decimal.NewFromInt(150)}
	presentDays := []attendance.Record{{Date: day(1), Status: attendance.StatusPresent}}
	withdrawals := []staff.Withdrawal{{Amount: decimal.NewFromInt(400)}}

	report := BuildReport(employee, day(1), day(7), presentDays, withdrawals)

	assert.True(t, report.Remaining.Equal(decimal.NewFromInt(-250)), "remaining %s", report.Remaining)
	assert.True(t, report.Remaining.IsNegative())
}

func TestBuildReportEmptyRange(t *testing.T) {
	employee := staff.Employee{ID: "e1", DailyWage: decimal.NewFromInt(200)}

	report := BuildReport(employee, day(1), day(7), nil, nil)

	assert.Equal(t, 0, report.WorkDays)
	assert.True(t, report.TotalEarned.IsZero())
	assert.True(t, report.TotalWithdrawals.IsZero())
	assert.True(t, report.Remaining.IsZero())
}

func TestBuildReportIsDeterministic(t *testing.T) {
	employee := staff.Employee{ID: "e1", DailyWage: decimal.NewFromFloat(87.5)}
	presentDays := []attendance.Record{
		{Date: day(1), Status: attendance.StatusPresent},
		{Date: day(2), Status: attendance.StatusPresent},
	}
	withdrawals := []staff.Withdrawal{{Amount: decimal.NewFromFloat(12.25)}}

	first := BuildReport(employee, day(1), day(7), presentDays, withdrawals)
	second := BuildReport(employee, day(1), day(7), presentDays, withdrawals)

	assert.True(t, first.TotalEarned.Equal(second.TotalEarned))
	assert.True(t, first.Remaining.Equal(second.Remaining))
	assert.Equal(t, first.WorkDays, second.WorkDays)
}
