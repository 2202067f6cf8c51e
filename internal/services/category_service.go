package services

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

const (
	defaultCategoryIcon  = "tag"
	defaultCategoryColor = "#6366F1"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

type categoryKey struct {
	name         string
	categoryType models.CategoryType
}

func keyOf(c *models.Category) categoryKey {
	return categoryKey{name: strings.ToLower(c.Name), categoryType: c.Type}
}

func sortCategories(categories []models.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].OrderIndex != categories[j].OrderIndex {
			return categories[i].OrderIndex < categories[j].OrderIndex
		}
		return categories[i].Name < categories[j].Name
	})
}

// GetVisibleCategories returns the categories the user sees: their own rows
// plus every default they have not shadowed, each parent carrying its
// visible subcategories. An empty userID yields the defaults only.
func (s *categoryService) GetVisibleCategories(userID string, categoryType *models.CategoryType) ([]models.Category, error) {
	query := s.db.Model(&models.Category{})
	if userID == "" {
		query = query.Where("user_id IS NULL")
	} else {
		query = query.Where("(user_id IS NULL OR user_id = ?)", userID)
	}
	if categoryType != nil {
		query = query.Where("type = ?", *categoryType)
	}

	var rows []models.Category
	if err := query.Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	// Defaults the user copied stay hidden even after the copy is deleted.
	shadowed := make(map[string]bool)
	for i := range rows {
		if rows[i].UserID != nil && rows[i].SourceID != nil {
			shadowed[*rows[i].SourceID] = true
		}
	}

	var active []models.Category
	for _, row := range rows {
		if row.IsActive {
			active = append(active, row)
		}
	}

	// Top level: user rows win over defaults with the same name and type.
	ownTop := make(map[categoryKey]bool)
	for i := range active {
		if active[i].UserID != nil && active[i].ParentID == nil {
			ownTop[keyOf(&active[i])] = true
		}
	}

	children := make(map[string][]models.Category)
	var parents []models.Category
	for i := range active {
		c := active[i]
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c)
			continue
		}
		if c.UserID == nil && (shadowed[c.ID] || ownTop[keyOf(&c)]) {
			continue
		}
		parents = append(parents, c)
	}

	for i := range parents {
		parents[i].Subcategories = resolveChildren(children[parents[i].ID], shadowed)
	}
	sortCategories(parents)

	if parents == nil {
		parents = []models.Category{}
	}
	return parents, nil
}

// resolveChildren applies the shadowing rule to the subcategories of one parent.
func resolveChildren(candidates []models.Category, shadowed map[string]bool) []models.Category {
	own := make(map[categoryKey]bool)
	for i := range candidates {
		if candidates[i].UserID != nil {
			own[keyOf(&candidates[i])] = true
		}
	}

	visible := make([]models.Category, 0, len(candidates))
	for i := range candidates {
		c := candidates[i]
		if c.UserID == nil && (shadowed[c.ID] || own[keyOf(&c)]) {
			continue
		}
		visible = append(visible, c)
	}
	sortCategories(visible)
	return visible
}

// GetVisibleCategory retrieves an active category the user may reference:
// one of their own or a system default. A default the user has overridden
// resolves to the override.
func (s *categoryService) GetVisibleCategory(userID, categoryID string) (*models.Category, error) {
	return findVisibleCategory(s.db, userID, categoryID)
}

func findVisibleCategory(db *gorm.DB, userID, categoryID string) (*models.Category, error) {
	var category models.Category
	err := db.Where("id = ? AND is_active = ? AND (user_id IS NULL OR user_id = ?)", categoryID, true, userID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	if category.UserID != nil || userID == "" {
		return &category, nil
	}
	return resolveDefault(db, userID, &category)
}

// resolveDefault maps a default to the row the user actually sees: their
// active override when one exists, NOT_FOUND when a deleted copy still
// shadows it, and the default itself otherwise.
func resolveDefault(db *gorm.DB, userID string, category *models.Category) (*models.Category, error) {
	if !category.IsSubcategory() {
		return resolveOverride(db, userID, category, nil)
	}

	var parent models.Category
	if err := db.Where("id = ? AND user_id IS NULL", *category.ParentID).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	resolvedParent, err := resolveOverride(db, userID, &parent, nil)
	if err != nil {
		return nil, err
	}
	if resolvedParent.UserID == nil {
		return resolveOverride(db, userID, category, category.ParentID)
	}

	// Only the copy's subcategories are shown once the parent is copied.
	child, err := findCopy(db, userID, category, &resolvedParent.ID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return child, nil
}

func resolveOverride(db *gorm.DB, userID string, category *models.Category, parentID *string) (*models.Category, error) {
	override, err := findCopy(db, userID, category, parentID)
	if err != nil {
		return nil, err
	}
	if override != nil {
		return override, nil
	}

	var shadows int64
	if err := db.Model(&models.Category{}).
		Where("user_id = ? AND source_id = ?", userID, category.ID).
		Count(&shadows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	if shadows > 0 {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

// CreateCategory creates a new category owned by the user
func (s *categoryService) CreateCategory(userID string, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category name is required")
	}

	categoryType := input.Type
	if input.ParentID != nil {
		parent, err := s.GetVisibleCategory(userID, *input.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCategoryNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Parent category not found")
			}
			return nil, err
		}
		if parent.IsSubcategory() {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "subcategories cannot have children")
		}
		if categoryType != "" && categoryType != parent.Type {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "subcategory type must match its parent")
		}
		categoryType = parent.Type
		input.ParentID = &parent.ID
	}
	if !categoryType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "type must be income, expense or investment")
	}

	category := &models.Category{
		UserID:   &userID,
		Name:     name,
		Type:     categoryType,
		Icon:     input.Icon,
		Color:    input.Color,
		IsActive: true,
		ParentID: input.ParentID,
	}
	if category.Icon == "" {
		category.Icon = defaultCategoryIcon
	}
	if category.Color == "" {
		category.Color = defaultCategoryColor
	}

	if input.OrderIndex != nil {
		category.OrderIndex = *input.OrderIndex
	} else {
		next, err := s.nextOrderIndex(userID, input.ParentID)
		if err != nil {
			return nil, err
		}
		category.OrderIndex = next
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	return category, nil
}

func (s *categoryService) nextOrderIndex(userID string, parentID *string) (int, error) {
	query := s.db.Model(&models.Category{}).Where("user_id = ?", userID)
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}

	var maxIndex int
	if err := query.Select("COALESCE(MAX(order_index), 0)").Scan(&maxIndex).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return maxIndex + 1, nil
}

// CreateUserCopy copies a default category and its active subcategories into
// rows owned by the user. For a default subcategory the whole parent is
// copied and the copy of the requested subcategory is returned. An existing
// active copy is returned unchanged.
func (s *categoryService) CreateUserCopy(userID, categoryID string) (*models.Category, error) {
	var result *models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var source models.Category
		if err := tx.Where("id = ? AND user_id IS NULL", categoryID).First(&source).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}

		if !source.IsSubcategory() {
			copied, err := copyDefault(tx, userID, &source)
			result = copied
			return err
		}

		var parent models.Category
		if err := tx.Where("id = ? AND user_id IS NULL", *source.ParentID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
		copiedParent, err := copyDefault(tx, userID, &parent)
		if err != nil {
			return err
		}
		child, err := findCopy(tx, userID, &source, &copiedParent.ID)
		if err != nil {
			return err
		}
		if child == nil {
			return apperrors.ErrCategoryNotFound
		}
		result = child
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// findCopy returns the user's active override of a default category, if
// any. A copy made earlier is matched by source; a category the user created
// by hand is matched by name and type under the same parent.
func findCopy(tx *gorm.DB, userID string, source *models.Category, parentID *string) (*models.Category, error) {
	query := tx.Where("user_id = ? AND is_active = ?", userID, true).
		Where("(source_id = ? OR (LOWER(name) = ? AND type = ?))", source.ID, strings.ToLower(source.Name), source.Type)
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}

	var existing models.Category
	if err := query.Order("created_at").First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return &existing, nil
}

// copyDefault copies a top-level default and its subcategories for the user,
// then moves the user's own subcategories of the default under the copy.
func copyDefault(tx *gorm.DB, userID string, source *models.Category) (*models.Category, error) {
	if existing, err := findCopy(tx, userID, source, nil); err != nil || existing != nil {
		return existing, err
	}

	sourceID := source.ID
	copied := &models.Category{
		UserID:     &userID,
		Name:       source.Name,
		Type:       source.Type,
		Icon:       source.Icon,
		Color:      source.Color,
		IsActive:   true,
		OrderIndex: source.OrderIndex,
		SourceID:   &sourceID,
	}
	if err := tx.Create(copied).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	var defaults []models.Category
	if err := tx.Where("parent_id = ? AND user_id IS NULL AND is_active = ?", source.ID, true).
		Find(&defaults).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	// Subcategories the user made under the default follow the copy. One
	// with the same name as a default subcategory replaces it.
	var own []models.Category
	if err := tx.Where("parent_id = ? AND user_id = ?", source.ID, userID).Find(&own).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	ownKeys := make(map[categoryKey]bool, len(own))
	for i := range own {
		if own[i].IsActive {
			ownKeys[keyOf(&own[i])] = true
		}
	}
	if len(own) > 0 {
		if err := tx.Model(&models.Category{}).
			Where("parent_id = ? AND user_id = ?", source.ID, userID).
			Update("parent_id", copied.ID).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrServerError, err)
		}
	}

	for i := range defaults {
		child := defaults[i]
		if ownKeys[keyOf(&child)] {
			continue
		}
		childSource := child.ID
		childCopy := &models.Category{
			UserID:     &userID,
			Name:       child.Name,
			Type:       copied.Type,
			Icon:       child.Icon,
			Color:      child.Color,
			IsActive:   true,
			ParentID:   &copied.ID,
			OrderIndex: child.OrderIndex,
			SourceID:   &childSource,
		}
		if err := tx.Create(childCopy).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrServerError, err)
		}
	}

	return copied, nil
}

// UpdateCategory changes the name, icon or color of a category. Editing a
// default never touches the default row: the user's copy is edited instead,
// created on first use.
func (s *categoryService) UpdateCategory(userID, categoryID string, patch CategoryPatch) (*models.Category, error) {
	updates := make(map[string]interface{})
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "category name cannot be empty")
		}
		updates["name"] = name
	}
	if patch.Icon != nil {
		updates["icon"] = *patch.Icon
	}
	if patch.Color != nil {
		updates["color"] = *patch.Color
	}

	var result *models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		target, err := s.resolveEditable(tx, userID, categoryID)
		if err != nil {
			return err
		}

		if len(updates) > 0 {
			if err := tx.Model(target).Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrServerError, err)
			}
			if err := tx.First(target, "id = ?", target.ID).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrServerError, err)
			}
		}
		result = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveEditable maps a category id to the row the user is allowed to
// change, copying defaults as needed.
func (s *categoryService) resolveEditable(tx *gorm.DB, userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := tx.Where("id = ? AND is_active = ?", categoryID, true).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	if category.UserID != nil {
		if !category.OwnedBy(userID) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return &category, nil
	}

	if !category.IsSubcategory() {
		return copyDefault(tx, userID, &category)
	}

	var parent models.Category
	if err := tx.Where("id = ? AND user_id IS NULL", *category.ParentID).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	copiedParent, err := copyDefault(tx, userID, &parent)
	if err != nil {
		return nil, err
	}
	child, err := findCopy(tx, userID, &category, &copiedParent.ID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return child, nil
}

// DeleteCategory deactivates a user-owned category and its subcategories.
// Defaults cannot be deleted.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ? AND user_id = ? AND is_active = ?", categoryID, userID, true).
			First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}

		if err := tx.Model(&models.Category{}).
			Where("(id = ? OR parent_id = ?) AND user_id = ?", category.ID, category.ID, userID).
			Update("is_active", false).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
		return nil
	})
}
