package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

type recurringService struct {
	db *gorm.DB
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db}
}

// GetRecurringTransactions lists the user's active templates by next due date.
func (s *recurringService) GetRecurringTransactions(userID string) ([]models.RecurringTransaction, error) {
	var items []models.RecurringTransaction
	if err := s.db.Preload("Category").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("next_date ASC").Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	if items == nil {
		items = []models.RecurringTransaction{}
	}
	return items, nil
}

// CreateRecurringTransaction stores a new template. The first occurrence is
// the start date.
func (s *recurringService) CreateRecurringTransaction(userID string, input RecurringInput) (*models.RecurringTransaction, error) {
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "type must be income, expense or investment")
	}
	switch input.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "frequency must be daily, weekly, monthly or yearly")
	}
	if input.StartDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "start_date is required")
	}

	start := models.DateOnly(input.StartDate)
	var end *time.Time
	if input.EndDate != nil {
		e := models.DateOnly(*input.EndDate)
		if e.Before(start) {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "end_date cannot be before start_date")
		}
		end = &e
	}

	category, err := findVisibleCategory(s.db, userID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	item := &models.RecurringTransaction{
		UserID:      userID,
		CategoryID:  category.ID,
		Type:        input.Type,
		Amount:      amount,
		Description: input.Description,
		Frequency:   input.Frequency,
		StartDate:   start,
		EndDate:     end,
		NextDate:    start,
		IsActive:    true,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return item, nil
}

// DeleteRecurringTransaction deactivates a template.
func (s *recurringService) DeleteRecurringTransaction(userID, recurringID string) error {
	result := s.db.Model(&models.RecurringTransaction{}).
		Where("id = ? AND user_id = ? AND is_active = ?", recurringID, userID, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrServerError, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrRecurringNotFound
	}
	return nil
}
