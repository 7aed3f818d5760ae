package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/pagination"
	"spendtrack/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest represents the request payload for recording an expense.
// The date uses the YYYY-MM-DD form; expenses carry no time of day.
type ExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Merchant      string          `json:"merchant" binding:"required,notblank,max=200"`
	CategoryID    *uint           `json:"category_id"`
	Description   string          `json:"description" binding:"max=500"`
	PaymentMethod string          `json:"payment_method" binding:"max=50"`
	IsRecurring   bool            `json:"is_recurring"`
}

// UpdateExpenseRequest represents the request payload for updating an expense.
type UpdateExpenseRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	Date          *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Merchant      *string          `json:"merchant" binding:"omitempty,notblank,max=200"`
	CategoryID    *uint            `json:"category_id"`
	Description   *string          `json:"description" binding:"omitempty,max=500"`
	PaymentMethod *string          `json:"payment_method" binding:"omitempty,max=50"`
	IsRecurring   *bool            `json:"is_recurring"`
}

// ImportExpensesRequest carries a pre-parsed batch of expenses to import
// together. All rows get the same batch tag.
type ImportExpensesRequest struct {
	Batch    string           `json:"batch" binding:"max=100"`
	Expenses []ExpenseRequest `json:"expenses" binding:"required,min=1,dive"`
}

func (r ExpenseRequest) toInput() services.ExpenseInput {
	date, _ := time.Parse("2006-01-02", r.Date)
	return services.ExpenseInput{
		Amount:        r.Amount,
		Date:          date,
		Merchant:      r.Merchant,
		CategoryID:    r.CategoryID,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		IsRecurring:   r.IsRecurring,
	}
}

// CreateExpense records a single spending event.
// @Summary     Record an expense
// @Description Record a spending event for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.RecordExpense(p.UserID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(p.UserID, "RECORD_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"merchant": expense.Merchant, "amount": expense.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// UpdateExpense updates an expense owned by the authenticated user.
// @Summary     Update an expense
// @Description Update fields of an existing expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to update"
// @Success     200 {object} models.Expense "Expense updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.ExpenseUpdate{
		Amount:        req.Amount,
		Merchant:      req.Merchant,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		IsRecurring:   req.IsRecurring,
	}
	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		update.Date = &date
	}

	expense, err := h.expenseService.UpdateExpense(p.UserID, expenseID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(p.UserID, "UPDATE_EXPENSE", "expense", expense.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// GetExpenses lists the user's expenses, newest date first.
// @Summary     Get expenses
// @Description Get a paginated list of the user's expenses with optional date-range and category filters
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from        query string false "Start date (YYYY-MM-DD)"
// @Param       to          query string false "End date (YYYY-MM-DD)"
// @Param       category_id query int    false "Filter by category"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.ExpenseFilter
	if v := c.Query("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be YYYY-MM-DD"))
			return
		}
		filter.FromDate = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be YYYY-MM-DD"))
			return
		}
		filter.ToDate = &to
	}
	if v := c.Query("category_id"); v != "" {
		id, err := parseQueryInt(c, "category_id")
		if err != nil || id < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid category_id"))
			return
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	result, err := h.expenseService.GetUserExpenses(p.UserID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ImportExpenses imports a batch of expenses together.
// @Summary     Import expenses
// @Description Record a batch of expenses stamped with a shared import batch tag
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ImportExpensesRequest true "Batch of expenses"
// @Success     201 {object} map[string]interface{} "Imported expenses and batch tag"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/import [post]
func (h *ExpenseHandler) ImportExpenses(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ImportExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inputs := make([]services.ExpenseInput, 0, len(req.Expenses))
	for _, e := range req.Expenses {
		inputs = append(inputs, e.toInput())
	}

	expenses, batch, err := h.expenseService.ImportExpenses(p.UserID, req.Batch, inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(p.UserID, "IMPORT_EXPENSES", "expense_batch", 0, c.ClientIP(),
		map[string]interface{}{"batch": batch, "count": len(expenses)})

	c.JSON(http.StatusCreated, gin.H{"batch": batch, "count": len(expenses), "expenses": expenses})
}
