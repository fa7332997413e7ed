package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"morisco/internal/domain/attendance"
	"morisco/internal/domain/staff"
)

// BuildReport aggregates an employee's present days and withdrawals over a
// date range. Remaining may be negative, meaning the employee has drawn
// more than they earned.
func BuildReport(employee staff.Employee, start, end time.Time, presentDays []attendance.Record, withdrawals []staff.Withdrawal) Report {
	workDays := len(presentDays)
	totalEarned := employee.DailyWage.Mul(decimal.NewFromInt(int64(workDays)))

	totalWithdrawals := decimal.Zero
	for _, w := range withdrawals {
		totalWithdrawals = totalWithdrawals.Add(w.Amount)
	}

	return Report{
		Employee:         employee,
		StartDate:        start,
		EndDate:          end,
		WorkDays:         workDays,
		TotalEarned:      totalEarned,
		TotalWithdrawals: totalWithdrawals,
		Remaining:        totalEarned.Sub(totalWithdrawals),
		Attendance:       presentDays,
		Withdrawals:      withdrawals,
	}
}
