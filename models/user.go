package models

import "gorm.io/gorm"

// User is an account owner. Every other entity is scoped to a user id and is
// never visible across accounts. Name is the only field that may change after
// registration.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
}
