package models

import "time"

// User represents the user model in the database. The password hash is
// never serialized to JSON; the enabled/locked/credentials flags default
// to a usable account.
type User struct {
	Base
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Roles              RoleList   `gorm:"serializer:json" json:"roles"`
	Enabled            bool       `gorm:"not null;default:true" json:"-"`
	Locked             bool       `gorm:"not null;default:false" json:"-"`
	CredentialsExpired bool       `gorm:"not null;default:false" json:"-"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	Budgets            []Budget   `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Expenses           []Expense  `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
