package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// netWorthService handles holdings and net-worth figures.
type netWorthService struct {
	db *gorm.DB
}

// NewNetWorthService creates a new NetWorthServicer.
func NewNetWorthService(db *gorm.DB) NetWorthServicer {
	return &netWorthService{db: db}
}

// GetNetWorth derives the user's all-time position. Net worth counts
// income against expenses; investment transactions are reported alongside
// and added to total assets.
func (s *netWorthService) GetNetWorth(userID string) (*NetWorth, error) {
	totals, err := sumByType(s.db, userID, nil, nil)
	if err != nil {
		return nil, err
	}

	result := &NetWorth{
		Income:      decimal.Zero,
		Expenses:    decimal.Zero,
		Investments: decimal.Zero,
	}
	for _, t := range totals {
		switch t.Type {
		case models.TransactionTypeIncome:
			result.Income = t.Total
		case models.TransactionTypeExpense:
			result.Expenses = t.Total
		case models.TransactionTypeInvestment:
			result.Investments = t.Total
		}
	}
	result.NetWorth = result.Income.Sub(result.Expenses)
	result.TotalAssets = result.Income.Add(result.Investments)

	holdings, err := s.GetInvestments(userID)
	if err != nil {
		return nil, err
	}
	result.Holdings = summarizeHoldings(holdings)

	return result, nil
}

func summarizeHoldings(holdings []models.Investment) HoldingsSummary {
	summary := HoldingsSummary{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Count:       len(holdings),
	}
	for _, h := range holdings {
		if h.Kind == models.InvestmentKindLiability {
			summary.Liabilities = summary.Liabilities.Add(h.CurrentValue)
		} else {
			summary.Assets = summary.Assets.Add(h.CurrentValue)
		}
	}
	summary.Net = summary.Assets.Sub(summary.Liabilities)
	return summary
}

// GetInvestments lists the user's holdings, most valuable first.
func (s *netWorthService) GetInvestments(userID string) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).
		Order("current_value DESC").Order("name").
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	if investments == nil {
		investments = []models.Investment{}
	}
	return investments, nil
}

// CreateInvestment adds a holding.
func (s *netWorthService) CreateInvestment(userID string, input InvestmentInput) (*models.Investment, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "name is required")
	}
	if input.Kind != models.InvestmentKindAsset && input.Kind != models.InvestmentKindLiability {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "type must be asset or liability")
	}
	if input.InitialValue.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "initial_value cannot be negative")
	}

	current := input.InitialValue
	if input.CurrentValue != nil {
		if input.CurrentValue.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "current_value cannot be negative")
		}
		current = *input.CurrentValue
	}

	investment := &models.Investment{
		UserID:       userID,
		Name:         name,
		Kind:         input.Kind,
		Category:     input.Category,
		InitialValue: input.InitialValue.Round(2),
		CurrentValue: current.Round(2),
		Notes:        input.Notes,
	}
	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return investment, nil
}

func (s *netWorthService) getInvestment(userID, investmentID string) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", investmentID, userID).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return &investment, nil
}

// UpdateInvestment changes a holding's name, label, value or notes.
func (s *netWorthService) UpdateInvestment(userID, investmentID string, patch InvestmentPatch) (*models.Investment, error) {
	investment, err := s.getInvestment(userID, investmentID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.CurrentValue != nil {
		if patch.CurrentValue.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "current_value cannot be negative")
		}
		updates["current_value"] = patch.CurrentValue.Round(2)
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) == 0 {
		return investment, nil
	}

	if err := s.db.Model(&models.Investment{}).Where("id = ?", investment.ID).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return s.getInvestment(userID, investmentID)
}

// DeleteInvestment removes a holding.
func (s *netWorthService) DeleteInvestment(userID, investmentID string) error {
	result := s.db.Where("id = ? AND user_id = ?", investmentID, userID).Delete(&models.Investment{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrServerError, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrInvestmentNotFound
	}
	return nil
}
