package models

import "gorm.io/gorm"

// Transaction types. The sign of Amount always agrees with Type: incomes are
// stored positive, expenses negative. Normalization happens at the API
// boundary so aggregation can rely on the invariant.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single ledger entry. Date is a calendar day kept as a
// YYYY-MM-DD string; month filters work by prefix match on it.
type Transaction struct {
	gorm.Model
	Description   string  `json:"description" gorm:"not null"`
	Amount        float64 `json:"amount" gorm:"type:numeric(12,2);not null"`
	Date          string  `json:"date" gorm:"not null"`
	Type          string  `json:"type" gorm:"not null"`
	Category      string  `json:"category" gorm:"not null"`
	PaymentMethod *string `json:"paymentMethod"` // expenses only
	UserID        uint    `json:"userId" gorm:"index;not null"`
}
