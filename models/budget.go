package models

import "gorm.io/gorm"

// Budget is a monthly spending limit for one category. A user has at most one
// budget per category; submitting a non-positive amount removes the row
// instead of storing it.
type Budget struct {
	gorm.Model
	Category string  `json:"category" gorm:"uniqueIndex:idx_budgets_category_user;not null"`
	Amount   float64 `json:"amount" gorm:"type:numeric(12,2);not null"`
	UserID   uint    `json:"userId" gorm:"uniqueIndex:idx_budgets_category_user;not null"`
}
