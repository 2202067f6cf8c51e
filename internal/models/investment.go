package models

import "github.com/shopspring/decimal"

// InvestmentKind distinguishes holdings that add to net worth from those
// that subtract from it.
type InvestmentKind string

const (
	InvestmentKindAsset     InvestmentKind = "asset"
	InvestmentKindLiability InvestmentKind = "liability"
)

// Investment is a manually tracked holding used for net-worth figures.
// It is not linked to transactions.
type Investment struct {
	Base
	UserID       string          `gorm:"size:36;not null;index" json:"user_id"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Kind         InvestmentKind  `gorm:"column:type;size:16;not null" json:"type"`
	Category     *string         `gorm:"size:64" json:"category"`
	InitialValue decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"initial_value"`
	CurrentValue decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"current_value"`
	Notes        *string         `json:"notes"`
}
