package database

import (
	"fmt"

	"fintrack/internal/logger"
	"fintrack/internal/models"

	"gorm.io/gorm"
)

type seedCategory struct {
	name     string
	icon     string
	color    string
	children []string
}

var defaultTaxonomy = map[models.CategoryType][]seedCategory{
	models.CategoryTypeExpense: {
		{"Food & Dining", "utensils", "#EF4444", []string{"Groceries", "Restaurants", "Coffee"}},
		{"Transportation", "car", "#F59E0B", []string{"Fuel", "Public Transit", "Parking"}},
		{"Housing", "home", "#8B5CF6", []string{"Rent", "Utilities", "Maintenance"}},
		{"Shopping", "shopping-bag", "#EC4899", nil},
		{"Entertainment", "film", "#06B6D4", nil},
		{"Healthcare", "heart-pulse", "#10B981", nil},
		{"Education", "book", "#3B82F6", nil},
		{"Bills", "file-text", "#64748B", nil},
	},
	models.CategoryTypeIncome: {
		{"Salary", "briefcase", "#22C55E", nil},
		{"Freelance", "laptop", "#14B8A6", nil},
		{"Business", "building", "#0EA5E9", nil},
		{"Gifts", "gift", "#F472B6", nil},
		{"Other Income", "plus-circle", "#84CC16", nil},
	},
	models.CategoryTypeInvestment: {
		{"Stocks", "trending-up", "#6366F1", nil},
		{"Mutual Funds", "pie-chart", "#A855F7", nil},
		{"Fixed Deposits", "landmark", "#0891B2", nil},
		{"Crypto", "bitcoin", "#F97316", nil},
		{"Gold", "coins", "#EAB308", nil},
		{"Real Estate", "building-2", "#78716C", nil},
	},
}

var seedOrder = []models.CategoryType{
	models.CategoryTypeExpense,
	models.CategoryTypeIncome,
	models.CategoryTypeInvestment,
}

// SeedDefaultCategories inserts the system default category taxonomy. It
// does nothing when default categories already exist.
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Where("user_id IS NULL").Count(&count).Error; err != nil {
		return fmt.Errorf("count default categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, categoryType := range seedOrder {
			for i, seed := range defaultTaxonomy[categoryType] {
				parent := &models.Category{
					Name:       seed.name,
					Type:       categoryType,
					Icon:       seed.icon,
					Color:      seed.color,
					IsDefault:  true,
					IsActive:   true,
					OrderIndex: i + 1,
				}
				if err := tx.Create(parent).Error; err != nil {
					return err
				}

				for j, name := range seed.children {
					child := &models.Category{
						Name:       name,
						Type:       categoryType,
						Icon:       seed.icon,
						Color:      seed.color,
						IsDefault:  true,
						IsActive:   true,
						ParentID:   &parent.ID,
						OrderIndex: j + 1,
					}
					if err := tx.Create(child).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed default categories: %w", err)
	}

	logger.Named("seed").Info("Seeded default categories")
	return nil
}
