package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Amount parses a decimal literal, failing the test on bad input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email and default settings.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     "Test User",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	if err := db.Create(models.DefaultSettings(user.ID)).Error; err != nil {
		t.Fatalf("failed to create test user settings: %v", err)
	}
	return user
}

func createCategory(t *testing.T, db *gorm.DB, category *models.Category) *models.Category {
	t.Helper()
	if category.Name == "" {
		category.Name = fmt.Sprintf("Test Category %d", nextID())
	}
	category.Icon = "tag"
	category.Color = "#6366F1"
	category.IsActive = true
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestDefaultCategory creates a system default category. parent may be nil.
func CreateTestDefaultCategory(t *testing.T, db *gorm.DB, name string, categoryType models.CategoryType, parent *models.Category) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Type: categoryType, IsDefault: true}
	if parent != nil {
		category.ParentID = &parent.ID
	}
	return createCategory(t, db, category)
}

// CreateTestCategory creates a top-level category owned by userID.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()
	return createCategory(t, db, &models.Category{UserID: &userID, Type: categoryType})
}

// CreateTestSubcategory creates a user-owned subcategory under parent.
func CreateTestSubcategory(t *testing.T, db *gorm.DB, userID string, parent *models.Category, name string) *models.Category {
	t.Helper()
	return createCategory(t, db, &models.Category{UserID: &userID, Type: parent.Type, ParentID: &parent.ID, Name: name})
}

// CreateTestTransaction creates a transaction on the given day.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID string, txType models.TransactionType, amount string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:          userID,
		CategoryID:      categoryID,
		Type:            txType,
		Amount:          Amount(t, amount),
		TransactionDate: models.DateOnly(date),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates an active budget with the default alert threshold.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, categoryID, amount string, month, year int) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:         userID,
		CategoryID:     categoryID,
		Amount:         Amount(t, amount),
		Month:          month,
		Year:           year,
		AlertThreshold: models.DefaultAlertThreshold,
		IsActive:       true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestInvestment creates a holding whose initial and current value are equal.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string, kind models.InvestmentKind, value string) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Holding %d", nextID()),
		Kind:         kind,
		InitialValue: Amount(t, value),
		CurrentValue: Amount(t, value),
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
