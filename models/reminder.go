package models

import "gorm.io/gorm"

// Reminder is an upcoming payment the user wants to be nagged about. Amount
// is optional because some bills are not known in advance.
type Reminder struct {
	gorm.Model
	Description string   `json:"description" gorm:"not null"`
	Amount      *float64 `json:"amount" gorm:"type:numeric(12,2)"`
	DueDate     string   `json:"dueDate" gorm:"not null"`
	IsPaid      bool     `json:"isPaid" gorm:"default:false;not null"`
	UserID      uint     `json:"userId" gorm:"index;not null"`
}
