package models

import (
	"time"

	"fintrack/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NetWorthSnapshot records a user's net-worth figures as of one day.
// Rows are immutable history; recording the same day again overwrites it.
type NetWorthSnapshot struct {
	ID          string          `gorm:"size:36;primaryKey" json:"id"`
	UserID      string          `gorm:"size:36;not null;uniqueIndex:idx_networth_snapshots_user_day" json:"user_id"`
	RecordedOn  time.Time       `gorm:"type:date;not null;uniqueIndex:idx_networth_snapshots_user_day" json:"recorded_on"`
	Income      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"income"`
	Expenses    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"expenses"`
	Investments decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"investments"`
	NetWorth    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"net_worth"`
	TotalAssets decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_assets"`
	HoldingsNet decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"holdings_net"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (s *NetWorthSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New()
	}
	return nil
}
