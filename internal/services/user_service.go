package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

const minPasswordLength = 6

// userService handles user-related business logic.
type userService struct {
	db         *gorm.DB
	bcryptCost int
}

// NewUserService creates a new UserServicer hashing passwords at the given bcrypt cost.
func NewUserService(db *gorm.DB, bcryptCost int) UserServicer {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{db: db, bcryptCost: bcryptCost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser registers a new user together with their default settings.
func (s *userService) CreateUser(input RegisterInput) (*models.User, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || input.Password == "" || name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "email, password and name are required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
		Phone:    input.Phone,
		IsActive: true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
		if count > 0 {
			return apperrors.ErrUserExists
		}

		if err := tx.Create(user).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}

		settings := models.DefaultSettings(user.ID)
		if err := tx.Create(settings).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
		user.Settings = settings
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves an active user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? AND is_active = ?", normalizeEmail(email), true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Settings").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// AttemptLogin verifies credentials and records the login time. Unknown
// email, inactive account and wrong password all yield the same error.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.VerifyPassword(user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(user).Update("last_login_at", now).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	user.LastLoginAt = &now

	return user, nil
}

// UpdateProfile changes the user's name, phone or avatar.
func (s *userService) UpdateProfile(userID string, patch UserPatch) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Avatar != nil {
		updates["avatar"] = *patch.Avatar
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	return s.GetUserByID(userID)
}

// ChangePassword replaces the password after checking the current one.
func (s *userService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if !s.VerifyPassword(user, currentPassword) {
		return apperrors.WithMessage(apperrors.ErrInvalidCredentials, "Current password is incorrect")
	}
	if len(newPassword) < minPasswordLength {
		return apperrors.WithMessage(apperrors.ErrValidation, "password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrServerError, err)
	}

	if err := s.db.Model(user).Update("password", string(hashedPassword)).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return nil
}

// GetSettings returns the user's preferences, creating the defaults row if
// it is missing.
func (s *userService) GetSettings(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	if _, err := s.GetUserByID(userID); err != nil {
		return nil, err
	}
	created := models.DefaultSettings(userID)
	if err := s.db.Create(created).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return created, nil
}

// UpdateSettings applies a partial update to the user's preferences.
func (s *userService) UpdateSettings(userID string, patch SettingsPatch) (*models.UserSettings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Currency != nil {
		updates["currency"] = strings.ToUpper(*patch.Currency)
	}
	if patch.Language != nil {
		updates["language"] = *patch.Language
	}
	if patch.Theme != nil {
		updates["theme"] = *patch.Theme
	}
	if patch.DateFormat != nil {
		updates["date_format"] = *patch.DateFormat
	}
	if patch.NotificationsEnabled != nil {
		updates["notifications_enabled"] = *patch.NotificationsEnabled
	}
	if patch.BudgetAlertsEnabled != nil {
		updates["budget_alerts_enabled"] = *patch.BudgetAlertsEnabled
	}

	if len(updates) == 0 {
		return settings, nil
	}

	if err := s.db.Model(settings).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	var updated models.UserSettings
	if err := s.db.First(&updated, "id = ?", settings.ID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return &updated, nil
}

// DeleteUser permanently removes the user and everything they own.
func (s *userService) DeleteUser(userID string) error {
	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Children first: transactions reference categories.
		owned := []interface{}{
			&models.Transaction{},
			&models.Budget{},
			&models.RecurringTransaction{},
			&models.Investment{},
			&models.NetWorthSnapshot{},
		}
		for _, model := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrServerError, err)
			}
		}

		// Subcategories before their parents.
		if err := tx.Where("user_id = ? AND parent_id IS NOT NULL", userID).Delete(&models.Category{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Category{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserSettings{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.AuditLog{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
		if err := tx.Delete(&models.User{}, "id = ?", userID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrServerError, err)
		}
		return nil
	})
}
