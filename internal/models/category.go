package models

// Category is a named expense classification. Categories are shared
// reference data: budgets and expenses point at them by ID, but their
// lifecycle is managed outside this service.
type Category struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
