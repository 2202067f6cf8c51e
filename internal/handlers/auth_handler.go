package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// AuthHandler handles authentication, profile and settings requests
type AuthHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
	tokens       *middleware.TokenManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, auditService services.AuditServicer, tokens *middleware.TokenManager) *AuthHandler {
	return &AuthHandler{userService: userService, auditService: auditService, tokens: tokens}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Email    string  `json:"email" binding:"required,email,max=255"`
	Password string  `json:"password" binding:"required,min=6,max=128"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the profile update payload
type UpdateProfileRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone  *string `json:"phone" binding:"omitempty,max=32"`
	Avatar *string `json:"avatar" binding:"omitempty,max=2048"`
}

// ChangePasswordRequest represents the password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=128"`
}

// UpdateSettingsRequest represents the settings update payload
type UpdateSettingsRequest struct {
	Currency             *string `json:"currency" binding:"omitempty,len=3,alpha"`
	Language             *string `json:"language" binding:"omitempty,min=2,max=8"`
	Theme                *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	DateFormat           *string `json:"date_format" binding:"omitempty,max=16"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	BudgetAlertsEnabled  *bool   `json:"budget_alerts_enabled"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Phone       *string    `json:"phone,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"user"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Phone:       user.Phone,
		Avatar:      user.Avatar,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

func (h *AuthHandler) authResponse(user *models.User) (*AuthResponse, error) {
	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return &AuthResponse{
		Token:     token,
		ExpiresIn: int64(h.tokens.TTL().Seconds()),
		User:      newUserResponse(user),
	}, nil
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with name, email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} SuccessResponse{data=AuthResponse} "User registered and token generated"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     409 {object} middleware.ErrorResponse "Email already registered"
// @Failure     500 {object} middleware.ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.CreateUser(services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.authResponse(user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, services.AuditActionRegister, "user", user.ID, c.ClientIP(), nil)

	respond(c, http.StatusCreated, resp)
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} SuccessResponse{data=AuthResponse} "User authenticated and token generated"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Invalid credentials"
// @Failure     429 {object} middleware.ErrorResponse "Too many attempts"
// @Failure     500 {object} middleware.ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.authResponse(user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, services.AuditActionLogin, "user", user.ID, c.ClientIP(), nil)

	respond(c, http.StatusOK, resp)
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SuccessResponse{data=UserResponse} "User profile"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "User not found"
// @Router      /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, newUserResponse(user))
}

// UpdateProfile changes the user's name, phone or avatar
// @Summary     Update user profile
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile fields"
// @Success     200 {object} SuccessResponse{data=UserResponse} "Updated profile"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.UpdateProfile(userID, services.UserPatch{
		Name:   req.Name,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionUpdate, "user", userID, c.ClientIP(), nil)

	respond(c, http.StatusOK, newUserResponse(user))
}

// DeleteProfile deletes the user's account and everything it owns
// @Summary     Delete account
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SuccessResponse{data=MessageResponse} "Account deleted"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "User not found"
// @Router      /auth/profile [delete]
func (h *AuthHandler) DeleteProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.DeleteUser(userID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDeleteAccount, "user", userID, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, "Account deleted")
}

// ChangePassword replaces the user's password
// @Summary     Change password
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChangePasswordRequest true "Current and new password"
// @Success     200 {object} SuccessResponse{data=MessageResponse} "Password changed"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Current password is incorrect"
// @Router      /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	if err := h.userService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionChangePassword, "user", userID, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, "Password changed")
}

// GetSettings returns the user's preferences
// @Summary     Get settings
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SuccessResponse{data=models.UserSettings} "User settings"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /auth/settings [get]
func (h *AuthHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.userService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, settings)
}

// UpdateSettings changes the user's preferences
// @Summary     Update settings
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Settings fields"
// @Success     200 {object} SuccessResponse{data=models.UserSettings} "Updated settings"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /auth/settings [put]
func (h *AuthHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	settings, err := h.userService.UpdateSettings(userID, services.SettingsPatch{
		Currency:             req.Currency,
		Language:             req.Language,
		Theme:                req.Theme,
		DateFormat:           req.DateFormat,
		NotificationsEnabled: req.NotificationsEnabled,
		BudgetAlertsEnabled:  req.BudgetAlertsEnabled,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, settings)
}
