// Package errors provides the application error type shared by stores,
// handlers and middleware. Every failure that reaches a client is an
// AppError so the response envelope stays uniform and internal causes
// never leak outside development mode.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrTokenExpired       = &AppError{Code: "TOKEN_EXPIRED", Message: "Token has expired", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrTooManyRequests    = &AppError{Code: "TOO_MANY_REQUESTS", Message: "Too many attempts, please try again later", StatusCode: http.StatusTooManyRequests}
)

// General errors.
var (
	ErrValidation  = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound    = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrServerError = &AppError{Code: "SERVER_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserExists   = &AppError{Code: "USER_EXISTS", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrUserNotFound = WithMessage(ErrNotFound, "User not found")
)

// Resource-specific not-found errors share the NOT_FOUND code.
var (
	ErrCategoryNotFound    = WithMessage(ErrNotFound, "Category not found")
	ErrTransactionNotFound = WithMessage(ErrNotFound, "Transaction not found")
	ErrBudgetNotFound      = WithMessage(ErrNotFound, "Budget not found")
	ErrInvestmentNotFound  = WithMessage(ErrNotFound, "Investment not found")
	ErrRecurringNotFound   = WithMessage(ErrNotFound, "Recurring transaction not found")
)
