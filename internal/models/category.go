package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome     CategoryType = "income"
	CategoryTypeExpense    CategoryType = "expense"
	CategoryTypeInvestment CategoryType = "investment"
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeInvestment:
		return true
	}
	return false
}

// Category is either a system default (UserID nil, shared by every user)
// or a row owned by one user. Subcategories nest exactly one level deep and
// always share their parent's type. SourceID points at the default a user
// copy was made from; the copy shadows that default for its owner.
type Category struct {
	Base
	UserID     *string      `gorm:"size:36;index" json:"user_id"`
	Name       string       `gorm:"size:100;not null" json:"name"`
	Type       CategoryType `gorm:"size:16;not null;index" json:"type"`
	Icon       string       `gorm:"size:64" json:"icon"`
	Color      string       `gorm:"size:16" json:"color"`
	IsDefault  bool         `gorm:"not null" json:"is_default"`
	IsActive   bool         `gorm:"not null" json:"is_active"`
	ParentID   *string      `gorm:"size:36;index" json:"parent_id"`
	SourceID   *string      `gorm:"size:36;index" json:"source_id,omitempty"`
	OrderIndex int          `gorm:"not null" json:"order_index"`

	Parent        *Category  `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Subcategories []Category `gorm:"-" json:"subcategories,omitempty"`
}

// IsSubcategory reports whether the category hangs off a parent.
func (c *Category) IsSubcategory() bool {
	return c.ParentID != nil
}

// OwnedBy reports whether the category belongs to the given user.
func (c *Category) OwnedBy(userID string) bool {
	return c.UserID != nil && *c.UserID == userID
}
