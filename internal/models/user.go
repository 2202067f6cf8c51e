package models

import "time"

// User represents an account holder. Password holds the bcrypt hash and is
// never serialised.
type User struct {
	Base
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Phone       *string    `gorm:"size:32" json:"phone,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	Settings              *UserSettings          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"settings,omitempty"`
	Categories            []Category             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions          []Transaction          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Budgets               []Budget               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Investments           []Investment           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RecurringTransactions []RecurringTransaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	NetWorthSnapshots     []NetWorthSnapshot     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserSettings holds per-user display and notification preferences.
type UserSettings struct {
	Base
	UserID               string `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	Currency             string `gorm:"size:3;not null" json:"currency"`
	Language             string `gorm:"size:8;not null" json:"language"`
	Theme                string `gorm:"size:16;not null" json:"theme"`
	DateFormat           string `gorm:"size:16;not null" json:"date_format"`
	NotificationsEnabled bool   `gorm:"not null" json:"notifications_enabled"`
	BudgetAlertsEnabled  bool   `gorm:"not null" json:"budget_alerts_enabled"`
}

// TableName pins the table name used by the migrations.
func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultSettings returns the settings row created alongside a new user.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:               userID,
		Currency:             "USD",
		Language:             "en",
		Theme:                "light",
		DateFormat:           "YYYY-MM-DD",
		NotificationsEnabled: true,
		BudgetAlertsEnabled:  true,
	}
}
