package services

import (
	"time"

	"github.com/shopspring/decimal"

	"spendtrack/internal/auth"
	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
)

// UserServicer is the credential store: it owns user identity records and
// enforces email uniqueness at write time.
type UserServicer interface {
	CreateUser(email, passwordHash, firstName, lastName string, roles models.RoleList) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	UpdateLastLogin(userID uint, at time.Time) error
}

// UserView is the public-safe projection of a user. It never carries the
// password hash.
type UserView struct {
	ID          uint            `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Roles       models.RoleList `json:"roles"`
	CreatedAt   time.Time       `json:"created_at"`
	LastLoginAt *time.Time      `json:"last_login_at,omitempty"`
}

// AuthResult is returned from register, login, and refresh: a fresh token
// pair plus the public view of the user.
type AuthResult struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int64    `json:"expires_in"` // access token validity in milliseconds
	User         UserView `json:"user"`
}

// AuthServicer composes the credential store, password hasher, and token
// service into the register/login/refresh/current-user use cases.
type AuthServicer interface {
	Register(email, password, firstName, lastName string) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	Refresh(refreshToken string) (*AuthResult, error)
	ResolveCredentials(email, password string) (*models.User, error)
	ResolveToken(token string) (*auth.Principal, error)
	CurrentUser(p *auth.Principal) (*UserView, error)
}

// BudgetProgress pairs a period's budget with the expenses recorded
// against it.
type BudgetProgress struct {
	CategoryID uint            `json:"category_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
}

// BudgetServicer owns budget records and the spend-vs-budget rollup.
type BudgetServicer interface {
	SetBudget(userID, categoryID uint, month, year int, amount decimal.Decimal) (*models.Budget, error)
	GetUserBudgets(userID uint, month, year int) ([]models.Budget, error)
	SpendVsBudget(userID, categoryID uint, month, year int) (*BudgetProgress, error)
}

// ExpenseInput carries the caller-supplied fields of a new expense.
type ExpenseInput struct {
	Amount        decimal.Decimal
	Date          time.Time
	Merchant      string
	CategoryID    *uint
	Description   string
	PaymentMethod string
	IsRecurring   bool
}

// ExpenseUpdate carries optional field changes for an existing expense.
// Nil fields are left untouched.
type ExpenseUpdate struct {
	Amount        *decimal.Decimal
	Date          *time.Time
	Merchant      *string
	CategoryID    *uint
	Description   *string
	PaymentMethod *string
	IsRecurring   *bool
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	CategoryID *uint
}

// ExpenseServicer owns expense records: individual capture, owner-scoped
// updates, filtered listing, and bulk import.
type ExpenseServicer interface {
	RecordExpense(userID uint, in ExpenseInput) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, in ExpenseUpdate) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	ImportExpenses(userID uint, batch string, inputs []ExpenseInput) ([]models.Expense, string, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, details map[string]interface{})
}
