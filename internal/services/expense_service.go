package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
)

// expenseService owns expense records.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// validateInput checks the caller-supplied expense fields. Category
// existence is not verified here; categories are external reference data
// and the reference is the caller's responsibility.
func validateInput(in ExpenseInput) error {
	if in.Amount.IsNegative() {
		return apperrors.ErrInvalidAmount
	}
	if strings.TrimSpace(in.Merchant) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "merchant is required")
	}
	if len(in.Merchant) > 200 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "merchant must be at most 200 characters")
	}
	if len(in.Description) > 500 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description must be at most 500 characters")
	}
	if len(in.PaymentMethod) > 50 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "payment method must be at most 50 characters")
	}
	if in.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	return nil
}

func expenseFromInput(userID uint, in ExpenseInput, batch string) models.Expense {
	return models.Expense{
		UserID:         userID,
		Amount:         in.Amount,
		Date:           truncateToDate(in.Date),
		Merchant:       strings.TrimSpace(in.Merchant),
		CategoryID:     in.CategoryID,
		Description:    in.Description,
		PaymentMethod:  in.PaymentMethod,
		IsRecurring:    in.IsRecurring,
		CSVImportBatch: batch,
	}
}

// RecordExpense captures a single spending event for the user.
func (s *expenseService) RecordExpense(userID uint, in ExpenseInput) (*models.Expense, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	expense := expenseFromInput(userID, in, "")
	if err := s.db.Create(&expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense applies the non-nil fields of the update to an expense
// owned by the user.
func (s *expenseService) UpdateExpense(userID, expenseID uint, in ExpenseUpdate) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["amount"] = *in.Amount
	}
	if in.Date != nil {
		updates["date"] = truncateToDate(*in.Date)
	}
	if in.Merchant != nil {
		if strings.TrimSpace(*in.Merchant) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "merchant is required")
		}
		updates["merchant"] = strings.TrimSpace(*in.Merchant)
	}
	if in.CategoryID != nil {
		updates["category_id"] = *in.CategoryID
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.PaymentMethod != nil {
		updates["payment_method"] = *in.PaymentMethod
	}
	if in.IsRecurring != nil {
		updates["is_recurring"] = *in.IsRecurring
	}

	if len(updates) > 0 {
		if err := s.db.Model(&expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &expense, nil
}

// GetUserExpenses returns a paginated list of the user's expenses with
// optional date-range and category filters, newest date first.
func (s *expenseService) GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if filter.FromDate != nil {
		base = base.Where("date >= ?", truncateToDate(*filter.FromDate))
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", truncateToDate(*filter.ToDate))
	}
	if filter.CategoryID != nil {
		base = base.Where("category_id = ?", *filter.CategoryID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	err := base.Order("date DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ImportExpenses inserts a batch of expenses in one transaction, all
// stamped with the same import batch tag. An empty batch tag gets a
// generated one.
func (s *expenseService) ImportExpenses(userID uint, batch string, inputs []ExpenseInput) ([]models.Expense, string, error) {
	if len(inputs) == 0 {
		return nil, "", apperrors.WithMessage(apperrors.ErrInvalidInput, "no expenses to import")
	}
	if batch == "" {
		batch = uuid.New().String()
	}
	if len(batch) > 100 {
		return nil, "", apperrors.WithMessage(apperrors.ErrInvalidInput, "import batch tag must be at most 100 characters")
	}

	expenses := make([]models.Expense, 0, len(inputs))
	for _, in := range inputs {
		if err := validateInput(in); err != nil {
			return nil, "", err
		}
		expenses = append(expenses, expenseFromInput(userID, in, batch))
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&expenses).Error
	})
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expenses, batch, nil
}

// truncateToDate drops the time-of-day component; expense dates are
// calendar dates.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
