package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

const exposeDetailsKey = "exposeErrorDetails"

// ErrorDetail is the inner error object of a failed response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into the error envelope. When production is false, server errors
// also carry their internal cause in error.details.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(exposeDetailsKey, !production)
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RenderError(c, c.Errors.Last().Err)
	}
}

// Recovery turns a panic in a later handler into a SERVER_ERROR envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Get().Errorw("panic recovered",
					"panic", recovered,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
				RenderError(c, apperrors.Wrap(apperrors.ErrServerError, fmt.Errorf("panic: %v", recovered)))
			}
		}()
		c.Next()
	}
}

// RenderError writes err as the error envelope and aborts the chain.
// AppErrors keep their status, code and message; anything else is logged
// and reported as SERVER_ERROR.
func RenderError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(apperrors.ErrServerError, err)
	}

	if appErr.Internal != nil {
		logger.Get().Errorw("request failed",
			"code", appErr.Code,
			"message", appErr.Message,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
	}

	body := ErrorResponse{
		Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message},
	}
	if appErr.StatusCode == http.StatusInternalServerError && appErr.Internal != nil && c.GetBool(exposeDetailsKey) {
		body.Error.Details = appErr.Internal.Error()
	}

	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, body)
}
