package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/services"
)

type mockBudgetService struct {
	setBudgetFn      func(userID, categoryID uint, month, year int, amount decimal.Decimal) (*models.Budget, error)
	getUserBudgetsFn func(userID uint, month, year int) ([]models.Budget, error)
	spendVsBudgetFn  func(userID, categoryID uint, month, year int) (*services.BudgetProgress, error)
}

func (m *mockBudgetService) SetBudget(userID, categoryID uint, month, year int, amount decimal.Decimal) (*models.Budget, error) {
	if m.setBudgetFn != nil {
		return m.setBudgetFn(userID, categoryID, month, year, amount)
	}
	return &models.Budget{Base: models.Base{ID: 1}, UserID: userID, CategoryID: categoryID, Month: month, Year: year, Amount: amount}, nil
}

func (m *mockBudgetService) GetUserBudgets(userID uint, month, year int) ([]models.Budget, error) {
	if m.getUserBudgetsFn != nil {
		return m.getUserBudgetsFn(userID, month, year)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) SpendVsBudget(userID, categoryID uint, month, year int) (*services.BudgetProgress, error) {
	if m.spendVsBudgetFn != nil {
		return m.spendVsBudgetFn(userID, categoryID, month, year)
	}
	return &services.BudgetProgress{CategoryID: categoryID, Month: month, Year: year}, nil
}

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.PUT("/budgets", injectPrincipal(1), handler.SetBudget)
	r.GET("/budgets", injectPrincipal(1), handler.GetBudgets)
	r.GET("/budgets/summary", injectPrincipal(1), handler.GetBudgetSummary)
	return r
}

func TestBudgetHandler_SetBudget(t *testing.T) {
	t.Run("returns 200 with the budget", func(t *testing.T) {
		var gotUserID uint
		budgetSvc := &mockBudgetService{
			setBudgetFn: func(userID, categoryID uint, month, year int, amount decimal.Decimal) (*models.Budget, error) {
				gotUserID = userID
				return &models.Budget{Base: models.Base{ID: 7}, UserID: userID, CategoryID: categoryID, Month: month, Year: year, Amount: amount}, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets", `{"category_id":3,"month":4,"year":2026,"amount":"250.00"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUserID != 1 {
			t.Errorf("expected budget scoped to user 1, got %d", gotUserID)
		}
		result := parseJSON(t, rec)
		budget := result["budget"].(map[string]interface{})
		if budget["amount"] != "250" && budget["amount"] != "250.00" {
			t.Errorf("expected amount 250.00, got %v", budget["amount"])
		}
	})

	t.Run("accepts numeric amount", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets", `{"category_id":3,"month":4,"year":2026,"amount":99.50}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on out-of-range month", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			setBudgetFn: func(_, _ uint, _, _ int, _ decimal.Decimal) (*models.Budget, error) {
				return nil, apperrors.ErrInvalidMonth
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets", `{"category_id":3,"month":13,"year":2026,"amount":"10.00"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_MONTH")
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			setBudgetFn: func(_, _ uint, _, _ int, _ decimal.Decimal) (*models.Budget, error) {
				return nil, apperrors.ErrInvalidAmount
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets", `{"category_id":3,"month":4,"year":2026,"amount":"-10.00"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets", `{"month":4}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := gin.New()
		r.PUT("/budgets", handler.SetBudget)

		rec := doRequest(r, "PUT", "/budgets", `{"category_id":3,"month":4,"year":2026,"amount":"10.00"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetBudgets(t *testing.T) {
	t.Run("returns 200 with budgets", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			getUserBudgetsFn: func(userID uint, month, year int) ([]models.Budget, error) {
				return []models.Budget{
					{Base: models.Base{ID: 1}, UserID: userID, CategoryID: 3, Month: month, Year: year, Amount: decimal.RequireFromString("100.00")},
					{Base: models.Base{ID: 2}, UserID: userID, CategoryID: 5, Month: month, Year: year, Amount: decimal.RequireFromString("40.00")},
				}, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets?month=4&year=2026", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		budgets := result["budgets"].([]interface{})
		if len(budgets) != 2 {
			t.Errorf("expected 2 budgets, got %d", len(budgets))
		}
	})

	t.Run("returns 400 on missing month", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets?year=2026", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-numeric year", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets?month=4&year=soon", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetBudgetSummary(t *testing.T) {
	t.Run("returns 200 with progress", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			spendVsBudgetFn: func(_, categoryID uint, month, year int) (*services.BudgetProgress, error) {
				return &services.BudgetProgress{
					CategoryID: categoryID,
					Month:      month,
					Year:       year,
					Budgeted:   decimal.RequireFromString("100.00"),
					Spent:      decimal.RequireFromString("50.50"),
					Remaining:  decimal.RequireFromString("49.50"),
					Percentage: 50.5,
				}, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets/summary?category_id=3&month=4&year=2026", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["spent"] != "50.50" {
			t.Errorf("expected spent 50.50, got %v", result["spent"])
		}
		if result["percentage"] != 50.5 {
			t.Errorf("expected percentage 50.5, got %v", result["percentage"])
		}
	})

	t.Run("returns 400 on missing category_id", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets/summary?month=4&year=2026", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := gin.New()
		r.GET("/budgets/summary", handler.GetBudgetSummary)

		rec := doRequest(r, "GET", "/budgets/summary?category_id=3&month=4&year=2026", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
