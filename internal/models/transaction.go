package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeInvestment TransactionType = "investment"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeInvestment:
		return true
	}
	return false
}

// Transaction is a single ledger entry. The type is expected to agree with
// the category's type but this is not enforced by the store.
type Transaction struct {
	Base
	UserID             string                      `gorm:"size:36;not null;index" json:"user_id"`
	CategoryID         string                      `gorm:"size:36;not null;index" json:"category_id"`
	Type               TransactionType             `gorm:"size:16;not null;index" json:"type"`
	Amount             decimal.Decimal             `gorm:"type:decimal(14,2);not null" json:"amount"`
	Description        *string                     `json:"description"`
	Subcategory        *string                     `gorm:"size:100" json:"subcategory"`
	Note               *string                     `json:"note"`
	TransactionDate    time.Time                   `gorm:"type:date;not null;index" json:"transaction_date"`
	PaymentMethod      *string                     `gorm:"size:32" json:"payment_method"`
	IsRecurring        bool                        `gorm:"not null" json:"is_recurring"`
	RecurringFrequency *string                     `gorm:"size:16" json:"recurring_frequency"`
	Tags               datatypes.JSONSlice[string] `json:"tags"`
	AttachmentURL      *string                     `json:"attachment_url"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
