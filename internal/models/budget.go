package models

import "github.com/shopspring/decimal"

// Budget is a user's spending limit for one category in one calendar month.
// The composite unique index guarantees at most one budget per
// (user, category, month, year) even under concurrent upserts.
type Budget struct {
	Base
	UserID     uint            `gorm:"not null;uniqueIndex:idx_budget_owner_period" json:"user_id"`
	CategoryID uint            `gorm:"not null;uniqueIndex:idx_budget_owner_period" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"amount"`
	Month      int             `gorm:"not null;uniqueIndex:idx_budget_owner_period;check:month_valid,month >= 1 AND month <= 12" json:"month"`
	Year       int             `gorm:"not null;uniqueIndex:idx_budget_owner_period" json:"year"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
