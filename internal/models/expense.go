package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending event. The date carries no time component;
// CSVImportBatch correlates expenses that were imported together.
type Expense struct {
	Base
	UserID         uint            `gorm:"not null;index:idx_expense_owner_date" json:"user_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"amount"`
	Date           time.Time       `gorm:"type:date;not null;index:idx_expense_owner_date" json:"date"`
	Merchant       string          `gorm:"size:200;not null" json:"merchant"`
	CategoryID     *uint           `gorm:"index" json:"category_id,omitempty"`
	Description    string          `gorm:"size:500" json:"description,omitempty"`
	PaymentMethod  string          `gorm:"size:50" json:"payment_method,omitempty"`
	IsRecurring    bool            `gorm:"not null;default:false" json:"is_recurring"`
	CSVImportBatch string          `gorm:"size:100" json:"csv_import_batch,omitempty"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
