package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/uuid"
)

// SuccessResponse is the envelope written for every successful request.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// MessageResponse is the data payload of requests that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

const dateLayout = "2006-01-02"

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	respond(c, status, MessageResponse{Message: message})
}

// respondWithError writes a consistent JSON error response and stops the chain.
func respondWithError(c *gin.Context, err error) {
	middleware.RenderError(c, err)
}

// bindingError turns a gin binding failure into a VALIDATION_ERROR.
func bindingError(err error) error {
	return apperrors.WithMessage(apperrors.ErrValidation, err.Error())
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// optionalUserID returns the caller's id or "" for anonymous requests.
func optionalUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// parsePathID reads a UUID path parameter.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrValidation, "Invalid "+param)
	}
	return id, nil
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(value, field string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.WithMessage(apperrors.ErrValidation, field+" must be a date in YYYY-MM-DD format")
}

func parseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := parseDate(*value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parsePeriod reads month and year query parameters, defaulting to the
// current month.
func parsePeriod(c *gin.Context, now time.Time) (int, int, error) {
	month, year := int(now.Month()), now.Year()

	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, apperrors.WithMessage(apperrors.ErrValidation, "month must be between 1 and 12")
		}
		month = m
	}
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, apperrors.WithMessage(apperrors.ErrValidation, "year must be a number")
		}
		year = y
	}
	return month, year, nil
}
