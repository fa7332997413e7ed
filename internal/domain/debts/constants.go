package debts

const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)
