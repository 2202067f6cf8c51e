package models

import "github.com/shopspring/decimal"

// DefaultAlertThreshold is the spend percentage at which a budget alerts
// when the caller does not specify one.
const DefaultAlertThreshold = 80

// Budget caps spending in one category for one calendar month. Spent,
// remaining and percentage are derived from transactions at read time.
type Budget struct {
	Base
	UserID         string          `gorm:"size:36;not null;index" json:"user_id"`
	CategoryID     string          `gorm:"size:36;not null;index" json:"category_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Month          int             `gorm:"not null" json:"month"`
	Year           int             `gorm:"not null" json:"year"`
	AlertThreshold int             `gorm:"not null" json:"alert_threshold"`
	IsActive       bool            `gorm:"not null;index" json:"is_active"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
