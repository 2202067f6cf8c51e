package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func newTestUserService(t *testing.T) (UserServicer, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewUserService(db, bcrypt.MinCost), func() { testutil.TeardownTestDB(t, db) }
}

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc, done := newTestUserService(t)
		defer done()

		user, err := svc.CreateUser(RegisterInput{Email: "Alice@Example.com", Password: "password123", Name: "Alice"})
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected lower-cased email, got %s", user.Email)
		}
		if user.Password == "password123" {
			t.Error("password stored in plain text")
		}
		if !user.IsActive {
			t.Error("expected user to be active")
		}
		if user.Settings == nil || user.Settings.Currency != "USD" || !user.Settings.BudgetAlertsEnabled {
			t.Errorf("expected default settings, got %+v", user.Settings)
		}
	})

	t.Run("duplicate_email_case_insensitive", func(t *testing.T) {
		svc, done := newTestUserService(t)
		defer done()

		_, err := svc.CreateUser(RegisterInput{Email: "dup@example.com", Password: "password123", Name: "A"})
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser(RegisterInput{Email: "DUP@example.com", Password: "password456", Name: "B"})
		testutil.AssertAppError(t, err, "USER_EXISTS")
	})

	t.Run("missing_fields", func(t *testing.T) {
		svc, done := newTestUserService(t)
		defer done()

		_, err := svc.CreateUser(RegisterInput{Email: "", Password: "password123", Name: "A"})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
		_, err = svc.CreateUser(RegisterInput{Email: "a@b.com", Password: "password123"})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("short_password", func(t *testing.T) {
		svc, done := newTestUserService(t)
		defer done()

		_, err := svc.CreateUser(RegisterInput{Email: "a@b.com", Password: "123", Name: "A"})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success_records_login", func(t *testing.T) {
		svc, done := newTestUserService(t)
		defer done()

		_, err := svc.CreateUser(RegisterInput{Email: "login@example.com", Password: "password123", Name: "L"})
		testutil.AssertNoError(t, err)

		user, err := svc.AttemptLogin("LOGIN@example.com", "password123")
		testutil.AssertNoError(t, err)
		if user.LastLoginAt == nil {
			t.Error("expected last login time to be set")
		}

		stored, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if stored.LastLoginAt == nil {
			t.Error("expected last login time to be persisted")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		svc, done := newTestUserService(t)
		defer done()

		_, err := svc.CreateUser(RegisterInput{Email: "login@example.com", Password: "password123", Name: "L"})
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("login@example.com", "wrong-password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email", func(t *testing.T) {
		svc, done := newTestUserService(t)
		defer done()

		_, err := svc.AttemptLogin("nobody@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("inactive_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)
		testutil.AssertNoError(t, db.Model(user).Update("is_active", false).Error)

		_, err := svc.AttemptLogin(user.Email, testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)

		updated, err := svc.UpdateProfile(user.ID, UserPatch{Phone: strPtr("+15550100")})
		testutil.AssertNoError(t, err)

		if updated.Name != "Test User" {
			t.Errorf("expected name unchanged, got %s", updated.Name)
		}
		if updated.Phone == nil || *updated.Phone != "+15550100" {
			t.Errorf("expected phone set, got %v", updated.Phone)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateProfile(user.ID, UserPatch{Name: strPtr(" ")})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("unknown_user", func(t *testing.T) {
		svc, done := newTestUserService(t)
		defer done()

		_, err := svc.UpdateProfile("missing", UserPatch{Name: strPtr("x")})
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, svc.ChangePassword(user.ID, testutil.TestPassword, "new-secret"))

		_, err := svc.AttemptLogin(user.Email, "new-secret")
		testutil.AssertNoError(t, err)
		_, err = svc.AttemptLogin(user.Email, testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("wrong_current_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)

		err := svc.ChangePassword(user.ID, "nope", "new-secret")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestSettings(t *testing.T) {
	t.Run("update_and_read_back", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)

		off := false
		updated, err := svc.UpdateSettings(user.ID, SettingsPatch{Currency: strPtr("inr"), BudgetAlertsEnabled: &off})
		testutil.AssertNoError(t, err)

		if updated.Currency != "INR" {
			t.Errorf("expected INR, got %s", updated.Currency)
		}
		if updated.BudgetAlertsEnabled {
			t.Error("expected budget alerts disabled")
		}
		if !updated.NotificationsEnabled {
			t.Error("expected notifications unchanged")
		}
	})

	t.Run("missing_row_is_created", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)
		testutil.AssertNoError(t, db.Where("user_id = ?", user.ID).Delete(&models.UserSettings{}).Error)

		settings, err := svc.GetSettings(user.ID)
		testutil.AssertNoError(t, err)
		if settings.Theme != "light" {
			t.Errorf("expected default theme, got %s", settings.Theme)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("removes_owned_rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		parent := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestSubcategory(t, db, user.ID, parent, "Child")
		testutil.CreateTestTransaction(t, db, user.ID, parent.ID, models.TransactionTypeExpense, "10", testutil.Date(2025, 1, 1))
		testutil.CreateTestBudget(t, db, user.ID, parent.ID, "100", 1, 2025)
		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentKindAsset, "500")

		theirs := testutil.CreateTestCategory(t, db, other.ID, models.CategoryTypeExpense)

		testutil.AssertNoError(t, svc.DeleteUser(user.ID))

		_, err := svc.GetUserByID(user.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")

		for _, model := range []interface{}{&models.Category{}, &models.Transaction{}, &models.Budget{}, &models.Investment{}, &models.UserSettings{}} {
			var count int64
			db.Model(model).Where("user_id = ?", user.ID).Count(&count)
			if count != 0 {
				t.Errorf("expected no %T rows left, got %d", model, count)
			}
		}

		var kept models.Category
		testutil.AssertNoError(t, db.First(&kept, "id = ?", theirs.ID).Error)
	})

	t.Run("unknown_user", func(t *testing.T) {
		svc, done := newTestUserService(t)
		defer done()

		err := svc.DeleteUser("missing")
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}
