package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceFrequency is how often a recurring template repeats.
type RecurrenceFrequency string

const (
	FrequencyDaily   RecurrenceFrequency = "daily"
	FrequencyWeekly  RecurrenceFrequency = "weekly"
	FrequencyMonthly RecurrenceFrequency = "monthly"
	FrequencyYearly  RecurrenceFrequency = "yearly"
)

// Next returns the occurrence following from.
func (f RecurrenceFrequency) Next(from time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// RecurringTransaction is a stored template for a repeating entry. Nothing
// materialises transactions from it; it is kept for the user's reference.
type RecurringTransaction struct {
	Base
	UserID      string              `gorm:"size:36;not null;index" json:"user_id"`
	CategoryID  string              `gorm:"size:36;not null" json:"category_id"`
	Type        TransactionType     `gorm:"size:16;not null" json:"type"`
	Amount      decimal.Decimal     `gorm:"type:decimal(14,2);not null" json:"amount"`
	Description *string             `json:"description"`
	Frequency   RecurrenceFrequency `gorm:"size:16;not null" json:"frequency"`
	StartDate   time.Time           `gorm:"type:date;not null" json:"start_date"`
	EndDate     *time.Time          `gorm:"type:date" json:"end_date"`
	NextDate    time.Time           `gorm:"type:date;not null" json:"next_date"`
	IsActive    bool                `gorm:"not null" json:"is_active"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
