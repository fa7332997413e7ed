package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"morisco/internal/domain/attendance"
	"morisco/internal/domain/staff"
)

type Report struct {
	Employee         staff.Employee      `json:"employee"`
	StartDate        time.Time           `json:"startDate"`
	EndDate          time.Time           `json:"endDate"`
	WorkDays         int                 `json:"workDays"`
	TotalEarned      decimal.Decimal     `json:"totalEarned"`
	TotalWithdrawals decimal.Decimal     `json:"totalWithdrawals"`
	Remaining        decimal.Decimal     `json:"remaining"`
	Attendance       []attendance.Record `json:"attendance"`
	Withdrawals      []staff.Withdrawal  `json:"withdrawals"`
}
