package models

import "gorm.io/gorm"

// RecurringTransaction is a template that materializes one ledger entry per
// month. Amount is a positive magnitude; the sign is applied from Type at
// generation time. LastGenerated holds the YYYY-MM key of the last month a
// transaction was produced for and, once set, only ever moves forward.
type RecurringTransaction struct {
	gorm.Model
	Description   string  `json:"description" gorm:"not null"`
	Amount        float64 `json:"amount" gorm:"type:numeric(12,2);not null"`
	DayOfMonth    int     `json:"dayOfMonth" gorm:"not null"`
	Category      string  `json:"category" gorm:"not null"`
	Type          string  `json:"type" gorm:"not null"`
	LastGenerated *string `json:"lastGenerated"`
	UserID        uint    `json:"userId" gorm:"index;not null"`
}
