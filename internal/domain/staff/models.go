package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	DailyWage decimal.Decimal `json:"dailyWage"`
	HireDate  time.Time       `json:"hireDate"`
	AvatarURL string          `json:"avatarUrl,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Withdrawal is a cash advance against an employee's earned wages.
// Immutable once created.
type Withdrawal struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
