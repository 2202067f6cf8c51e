package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

// UserPatch lists the profile fields a user may change. Nil fields are left as is.
type UserPatch struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// SettingsPatch lists the preference fields a user may change.
type SettingsPatch struct {
	Currency             *string
	Language             *string
	Theme                *string
	DateFormat           *string
	NotificationsEnabled *bool
	BudgetAlertsEnabled  *bool
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(input RegisterInput) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdateProfile(userID string, patch UserPatch) (*models.User, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	GetSettings(userID string) (*models.UserSettings, error)
	UpdateSettings(userID string, patch SettingsPatch) (*models.UserSettings, error)
	DeleteUser(userID string) error
}

// CategoryInput carries the fields for a new user category. Zero values
// for Icon, Color and OrderIndex are replaced by defaults.
type CategoryInput struct {
	Name       string
	Type       models.CategoryType
	Icon       string
	Color      string
	ParentID   *string
	OrderIndex *int
}

// CategoryPatch lists the category fields a user may change.
type CategoryPatch struct {
	Name  *string
	Icon  *string
	Color *string
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	GetVisibleCategories(userID string, categoryType *models.CategoryType) ([]models.Category, error)
	GetVisibleCategory(userID, categoryID string) (*models.Category, error)
	CreateCategory(userID string, input CategoryInput) (*models.Category, error)
	CreateUserCopy(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID string, patch CategoryPatch) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
// Date bounds are inclusive calendar days.
type TransactionFilter struct {
	Type       *models.TransactionType
	CategoryID *string
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionInput carries the fields for a new transaction.
type TransactionInput struct {
	CategoryID         string
	Type               models.TransactionType
	Amount             decimal.Decimal
	Description        *string
	Subcategory        *string
	Note               *string
	TransactionDate    time.Time
	PaymentMethod      *string
	IsRecurring        bool
	RecurringFrequency *string
	Tags               []string
	AttachmentURL      *string
}

// TransactionPatch lists the transaction fields a user may change.
type TransactionPatch struct {
	CategoryID      *string
	Type            *models.TransactionType
	Amount          *decimal.Decimal
	Description     *string
	Subcategory     *string
	Note            *string
	TransactionDate *time.Time
	PaymentMethod   *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.CategoryID == nil && p.Type == nil && p.Amount == nil && p.Description == nil &&
		p.Subcategory == nil && p.Note == nil && p.TransactionDate == nil && p.PaymentMethod == nil
}

// MonthlySummary totals one calendar month of transactions.
type MonthlySummary struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	Investment       decimal.Decimal `json:"investment"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transaction_count"`
}

// CategoryTotal is one row of the monthly expense breakdown.
type CategoryTotal struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Count      int64           `json:"count"`
	Share      float64         `json:"share"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	CountUserTransactions(userID string, filter TransactionFilter) (int64, error)
	ListForExport(userID string, filter TransactionFilter) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, patch TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) (bool, error)
	GetMonthlySummary(userID string, month, year int) (*MonthlySummary, error)
	GetCategoryBreakdown(userID string, month, year int) ([]CategoryTotal, error)
	GetMonthlyTrend(userID string, months int, now time.Time) ([]MonthlySummary, error)
}

// BudgetInput carries the fields for creating or replacing a monthly budget.
type BudgetInput struct {
	CategoryID     string
	Amount         decimal.Decimal
	Month          int
	Year           int
	AlertThreshold *int
}

// BudgetPatch lists the budget fields a user may change.
type BudgetPatch struct {
	Amount         *decimal.Decimal
	AlertThreshold *int
}

// BudgetStatus is a budget together with what has been spent against it.
type BudgetStatus struct {
	models.Budget
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	UpsertBudget(userID string, input BudgetInput) (*models.Budget, bool, error)
	GetBudgetsWithSpent(userID string, month, year int) ([]BudgetStatus, error)
	GetBudgetAlerts(userID string, month, year int) ([]BudgetStatus, error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, patch BudgetPatch) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}

// HoldingsSummary totals the manually tracked investments.
type HoldingsSummary struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Net         decimal.Decimal `json:"net"`
	Count       int             `json:"count"`
}

// NetWorth is the all-time position derived from transactions and holdings.
type NetWorth struct {
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Investments decimal.Decimal `json:"investments"`
	NetWorth    decimal.Decimal `json:"net_worth"`
	TotalAssets decimal.Decimal `json:"total_assets"`
	Holdings    HoldingsSummary `json:"holdings"`
}

// InvestmentInput carries the fields for a new holding. CurrentValue
// defaults to InitialValue.
type InvestmentInput struct {
	Name         string
	Kind         models.InvestmentKind
	Category     *string
	InitialValue decimal.Decimal
	CurrentValue *decimal.Decimal
	Notes        *string
}

// InvestmentPatch lists the holding fields a user may change.
type InvestmentPatch struct {
	Name         *string
	Category     *string
	CurrentValue *decimal.Decimal
	Notes        *string
}

// NetWorthServicer defines the contract for net-worth figures and holdings.
type NetWorthServicer interface {
	GetNetWorth(userID string) (*NetWorth, error)
	GetInvestments(userID string) ([]models.Investment, error)
	CreateInvestment(userID string, input InvestmentInput) (*models.Investment, error)
	UpdateInvestment(userID, investmentID string, patch InvestmentPatch) (*models.Investment, error)
	DeleteInvestment(userID, investmentID string) error
}

// RecurringInput carries the fields for a new recurring template.
type RecurringInput struct {
	CategoryID  string
	Type        models.TransactionType
	Amount      decimal.Decimal
	Description *string
	Frequency   models.RecurrenceFrequency
	StartDate   time.Time
	EndDate     *time.Time
}

// RecurringServicer defines the contract for recurring transaction templates.
type RecurringServicer interface {
	GetRecurringTransactions(userID string) ([]models.RecurringTransaction, error)
	CreateRecurringTransaction(userID string, input RecurringInput) (*models.RecurringTransaction, error)
	DeleteRecurringTransaction(userID, recurringID string) error
}

// NetWorthSnapshotServicer defines the contract for recorded net-worth history.
type NetWorthSnapshotServicer interface {
	RecordSnapshot(userID string, day time.Time) (*models.NetWorthSnapshot, error)
	GetSnapshots(userID string, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
