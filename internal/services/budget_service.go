package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

// budgetService owns budget records and the spend-vs-budget rollup.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetBudget creates or updates the budget for (user, category, month, year).
// The write is a single atomic upsert against the composite unique index,
// so concurrent calls for the same key converge on one row.
func (s *budgetService) SetBudget(userID, categoryID uint, month, year int, amount decimal.Decimal) (*models.Budget, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}
	if year < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be positive")
	}
	if amount.IsNegative() {
		return nil, apperrors.ErrInvalidAmount
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
		Year:       year,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}, {Name: "year"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     amount,
			"updated_at": time.Now(),
		}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Re-read so the caller gets the canonical row, including the ID of a
	// pre-existing budget that the upsert updated.
	var saved models.Budget
	err = s.db.Where("user_id = ? AND category_id = ? AND month = ? AND year = ?",
		userID, categoryID, month, year).First(&saved).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// GetUserBudgets returns all budgets for the user in the given period.
func (s *budgetService) GetUserBudgets(userID uint, month, year int) ([]models.Budget, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}

	var budgets []models.Budget
	err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("category_id").
		Find(&budgets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// SpendVsBudget sums the user's expenses for the category whose date falls
// within the month and pairs the total with the budget amount for the same
// key. A missing budget counts as zero.
func (s *budgetService) SpendVsBudget(userID, categoryID uint, month, year int) (*BudgetProgress, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}

	budgeted := decimal.Zero
	var budget models.Budget
	err := s.db.Where("user_id = ? AND category_id = ? AND month = ? AND year = ?",
		userID, categoryID, month, year).First(&budget).Error
	switch {
	case err == nil:
		budgeted = budget.Amount
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No budget set for this period; spending is still reported.
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	var row struct {
		Total decimal.Decimal
	}
	err = s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND category_id = ? AND date >= ? AND date < ?",
			userID, categoryID, periodStart, periodEnd).
		Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent := row.Total
	var percentage float64
	if budgeted.IsPositive() {
		percentage, _ = spent.Div(budgeted).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &BudgetProgress{
		CategoryID: categoryID,
		Month:      month,
		Year:       year,
		Budgeted:   budgeted,
		Spent:      spent,
		Remaining:  budgeted.Sub(spent),
		Percentage: percentage,
	}, nil
}
