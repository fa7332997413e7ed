package attendance

import (
	"time"

	"morisco/internal/domain/staff"
)

type Record struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Date       time.Time       `json:"date"`
	Status     string          `json:"status"`
	TimeIn     *time.Time      `json:"timeIn,omitempty"`
	TimeOut    *time.Time      `json:"timeOut,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	Employee   *staff.Employee `json:"employee,omitempty"`
}

type Summary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

// RegisterRow is one line of the monthly attendance register export.
type RegisterRow struct {
	EmployeeName string
	Date         time.Time
	Status       string
	TimeIn       *time.Time
	TimeOut      *time.Time
}
