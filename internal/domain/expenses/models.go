package expenses

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is immutable once created; there is no update or delete path.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}
