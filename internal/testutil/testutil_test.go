package testutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "user_settings", "categories", "transactions", "budgets", "investments", "recurring_transactions", "net_worth_snapshots", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolation(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestUser(t, first)

	var count int64
	second.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("expected empty second database, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	var settings models.UserSettings
	if err := db.Where("user_id = ?", user.ID).First(&settings).Error; err != nil {
		t.Fatalf("expected settings row: %v", err)
	}
	if settings.Currency != "USD" {
		t.Errorf("expected USD, got %s", settings.Currency)
	}

	def := testutil.CreateTestDefaultCategory(t, db, "Food", models.CategoryTypeExpense, nil)
	if def.UserID != nil || !def.IsDefault {
		t.Error("default category should have no owner and the default flag")
	}

	category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
	if !category.OwnedBy(user.ID) {
		t.Error("category should be owned by the user")
	}

	tx := testutil.CreateTestTransaction(t, db, user.ID, category.ID, models.TransactionTypeExpense, "12.50", testutil.Date(2025, 3, 4))
	if !tx.Amount.Equal(testutil.Amount(t, "12.5")) {
		t.Errorf("expected amount 12.50, got %s", tx.Amount)
	}

	budget := testutil.CreateTestBudget(t, db, user.ID, category.ID, "100", 3, 2025)
	if budget.AlertThreshold != models.DefaultAlertThreshold {
		t.Errorf("expected threshold %d, got %d", models.DefaultAlertThreshold, budget.AlertThreshold)
	}

	inv := testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentKindAsset, "1000")
	if !inv.CurrentValue.Equal(inv.InitialValue) {
		t.Error("expected current value to equal initial value")
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrCategoryNotFound, "custom message")
	testutil.AssertAppError(t, err, "NOT_FOUND")
}

func TestAssertErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/missing", func(c *gin.Context) {
		middleware.RenderError(c, errors.WithMessage(errors.ErrNotFound, "Budget not found"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	message := testutil.AssertErrorResponse(t, rec, http.StatusNotFound, "NOT_FOUND")
	if message != "Budget not found" {
		t.Errorf("expected message %q, got %q", "Budget not found", message)
	}
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
