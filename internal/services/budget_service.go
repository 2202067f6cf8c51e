package services

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

var hundred = decimal.NewFromInt(100)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

func validateThreshold(threshold int) error {
	if threshold < 1 || threshold > 100 {
		return apperrors.WithMessage(apperrors.ErrValidation, "alert_threshold must be between 1 and 100")
	}
	return nil
}

// UpsertBudget creates the budget for (category, month, year) or replaces
// the amount and threshold of the active one. created reports which happened.
func (s *budgetService) UpsertBudget(userID string, input BudgetInput) (*models.Budget, bool, error) {
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, false, err
	}
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, false, err
	}
	threshold := models.DefaultAlertThreshold
	if input.AlertThreshold != nil {
		threshold = *input.AlertThreshold
	}
	if err := validateThreshold(threshold); err != nil {
		return nil, false, err
	}

	var budget models.Budget
	created := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		category, err := findVisibleCategory(tx, userID, input.CategoryID)
		if err != nil {
			return err
		}

		err = tx.Where("user_id = ? AND category_id = ? AND month = ? AND year = ? AND is_active = ?",
			userID, category.ID, input.Month, input.Year, true).First(&budget).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{"amount": amount}
			if input.AlertThreshold != nil {
				updates["alert_threshold"] = threshold
			}
			if err := tx.Model(&budget).Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrServerError, err)
			}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			budget = models.Budget{
				UserID:         userID,
				CategoryID:     category.ID,
				Amount:         amount,
				Month:          input.Month,
				Year:           input.Year,
				AlertThreshold: threshold,
				IsActive:       true,
			}
			if err := tx.Create(&budget).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrServerError, err)
			}
			created = true
			return nil
		default:
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
	})
	if err != nil {
		return nil, false, err
	}

	result, err := s.GetBudgetByID(userID, budget.ID)
	if err != nil {
		return nil, false, err
	}
	return result, created, nil
}

// GetBudgetsWithSpent lists the month's active budgets with spending,
// most consumed first.
func (s *budgetService) GetBudgetsWithSpent(userID string, month, year int) ([]BudgetStatus, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	var budgets []models.Budget
	if err := s.db.Preload("Category").
		Where("user_id = ? AND month = ? AND year = ? AND is_active = ?", userID, month, year, true).
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	if len(budgets) == 0 {
		return statuses, nil
	}

	spent, err := s.spentByCategory(userID, month, year)
	if err != nil {
		return nil, err
	}

	for _, budget := range budgets {
		statuses = append(statuses, NewBudgetStatus(budget, spent[budget.CategoryID]))
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Percentage > statuses[j].Percentage
	})
	return statuses, nil
}

// NewBudgetStatus derives remaining and percentage from the amount spent.
// Percentage is rounded to one decimal place, half away from zero.
func NewBudgetStatus(budget models.Budget, spent decimal.Decimal) BudgetStatus {
	spent = spent.Round(2)
	percentage := decimal.Zero
	if budget.Amount.IsPositive() {
		percentage = spent.Mul(hundred).Div(budget.Amount).Round(1)
	}
	return BudgetStatus{
		Budget:     budget,
		Spent:      spent,
		Remaining:  budget.Amount.Sub(spent),
		Percentage: percentage.InexactFloat64(),
	}
}

func (s *budgetService) spentByCategory(userID string, month, year int) (map[string]decimal.Decimal, error) {
	start, end := models.MonthRange(month, year)

	var rows []struct {
		CategoryID string
		Total      decimal.Decimal
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	spent := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		spent[row.CategoryID] = row.Total
	}
	return spent, nil
}

// GetBudgetAlerts returns the month's budgets at or above their alert threshold.
func (s *budgetService) GetBudgetAlerts(userID string, month, year int) ([]BudgetStatus, error) {
	statuses, err := s.GetBudgetsWithSpent(userID, month, year)
	if err != nil {
		return nil, err
	}

	alerts := make([]BudgetStatus, 0, len(statuses))
	for _, status := range statuses {
		if status.Percentage >= float64(status.AlertThreshold) {
			alerts = append(alerts, status)
		}
	}
	return alerts, nil
}

// GetBudgetByID retrieves an active budget by ID for a specific user
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ? AND is_active = ?", budgetID, userID, true).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return &budget, nil
}

// UpdateBudget changes a budget's amount or alert threshold.
func (s *budgetService) UpdateBudget(userID, budgetID string, patch BudgetPatch) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Amount != nil {
		amount, err := normalizeAmount(*patch.Amount)
		if err != nil {
			return nil, err
		}
		updates["amount"] = amount
	}
	if patch.AlertThreshold != nil {
		if err := validateThreshold(*patch.AlertThreshold); err != nil {
			return nil, err
		}
		updates["alert_threshold"] = *patch.AlertThreshold
	}

	if len(updates) == 0 {
		return budget, nil
	}

	if err := s.db.Model(&models.Budget{}).Where("id = ?", budget.ID).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	return s.GetBudgetByID(userID, budgetID)
}

// DeleteBudget deactivates a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	result := s.db.Model(&models.Budget{}).
		Where("id = ? AND user_id = ? AND is_active = ?", budgetID, userID, true).
		Update("is_active", false)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrServerError, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}
