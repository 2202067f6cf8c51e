package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestGetNetWorth(t *testing.T) {
	t.Run("combines_transactions_and_holdings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)
		user := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeIncome)
		expense := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		invest := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeInvestment)

		testutil.CreateTestTransaction(t, db, user.ID, income.ID, models.TransactionTypeIncome, "5000", testutil.Date(2024, 1, 1))
		testutil.CreateTestTransaction(t, db, user.ID, income.ID, models.TransactionTypeIncome, "1000", testutil.Date(2025, 1, 1))
		testutil.CreateTestTransaction(t, db, user.ID, expense.ID, models.TransactionTypeExpense, "2500.50", testutil.Date(2025, 2, 1))
		testutil.CreateTestTransaction(t, db, user.ID, invest.ID, models.TransactionTypeInvestment, "700", testutil.Date(2025, 3, 1))
		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentKindAsset, "10000")
		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentKindLiability, "2500")

		nw, err := svc.GetNetWorth(user.ID)
		testutil.AssertNoError(t, err)

		checks := map[string][2]string{
			"income":       {nw.Income.String(), "6000"},
			"expenses":     {nw.Expenses.String(), "2500.5"},
			"investments":  {nw.Investments.String(), "700"},
			"net_worth":    {nw.NetWorth.String(), "3499.5"},
			"total_assets": {nw.TotalAssets.String(), "6700"},
			"assets":       {nw.Holdings.Assets.String(), "10000"},
			"liabilities":  {nw.Holdings.Liabilities.String(), "2500"},
			"net":          {nw.Holdings.Net.String(), "7500"},
		}
		for name, c := range checks {
			if !testutil.Amount(t, c[0]).Equal(testutil.Amount(t, c[1])) {
				t.Errorf("%s: expected %s, got %s", name, c[1], c[0])
			}
		}
		if nw.Holdings.Count != 2 {
			t.Errorf("expected 2 holdings, got %d", nw.Holdings.Count)
		}
	})

	t.Run("new_user_is_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNetWorthService(db)
		user := testutil.CreateTestUser(t, db)

		nw, err := svc.GetNetWorth(user.ID)
		testutil.AssertNoError(t, err)
		if !nw.NetWorth.IsZero() || !nw.TotalAssets.IsZero() || !nw.Holdings.Net.IsZero() {
			t.Errorf("expected zeros, got %+v", nw)
		}
	})
}

func TestInvestmentCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewNetWorthService(db)
	user := testutil.CreateTestUser(t, db)

	var created *models.Investment
	t.Run("create_defaults_current_value", func(t *testing.T) {
		inv, err := svc.CreateInvestment(user.ID, InvestmentInput{
			Name: "Index Fund", Kind: models.InvestmentKindAsset,
			Category: strPtr("Mutual Funds"), InitialValue: testutil.Amount(t, "1200"),
		})
		testutil.AssertNoError(t, err)
		if !inv.CurrentValue.Equal(inv.InitialValue) {
			t.Errorf("expected current value to default to initial, got %s", inv.CurrentValue)
		}
		created = inv
	})

	t.Run("create_validation", func(t *testing.T) {
		_, err := svc.CreateInvestment(user.ID, InvestmentInput{Name: "X", Kind: "stock", InitialValue: testutil.Amount(t, "1")})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
		_, err = svc.CreateInvestment(user.ID, InvestmentInput{Name: "", Kind: models.InvestmentKindAsset})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
		_, err = svc.CreateInvestment(user.ID, InvestmentInput{Name: "X", Kind: models.InvestmentKindAsset, InitialValue: testutil.Amount(t, "-1")})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("update_value", func(t *testing.T) {
		updated, err := svc.UpdateInvestment(user.ID, created.ID, InvestmentPatch{CurrentValue: amountPtr(t, "1350.25")})
		testutil.AssertNoError(t, err)
		if !updated.CurrentValue.Equal(testutil.Amount(t, "1350.25")) {
			t.Errorf("expected 1350.25, got %s", updated.CurrentValue)
		}
		if !updated.InitialValue.Equal(testutil.Amount(t, "1200")) {
			t.Errorf("initial value should be unchanged, got %s", updated.InitialValue)
		}
	})

	t.Run("list", func(t *testing.T) {
		list, err := svc.GetInvestments(user.ID)
		testutil.AssertNoError(t, err)
		if len(list) != 1 {
			t.Errorf("expected 1 holding, got %d", len(list))
		}
	})

	t.Run("foreign_holding", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		_, err := svc.UpdateInvestment(other.ID, created.ID, InvestmentPatch{Name: strPtr("mine")})
		testutil.AssertAppError(t, err, "NOT_FOUND")
		err = svc.DeleteInvestment(other.ID, created.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})

	t.Run("delete", func(t *testing.T) {
		testutil.AssertNoError(t, svc.DeleteInvestment(user.ID, created.ID))
		err := svc.DeleteInvestment(user.ID, created.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}
