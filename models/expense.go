package models

import "time"

const (
	ExpensePaid   = "paid"
	ExpenseUnpaid = "unpaid"
)

// Expense is a discrete shop cost entry (rent, electricity, supplies...).
type Expense struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
