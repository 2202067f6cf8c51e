package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

const defaultTrendMonths = 6

// AnalyticsHandler serves monthly reports derived from transactions.
type AnalyticsHandler struct {
	transactionService services.TransactionServicer
	now                func() time.Time
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(transactionService services.TransactionServicer) *AnalyticsHandler {
	return &AnalyticsHandler{transactionService: transactionService, now: time.Now}
}

// GetSummary totals one month by transaction type.
// @Summary     Monthly summary
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Month 1-12 (default current)"
// @Param       year  query int false "Year (default current)"
// @Success     200 {object} SuccessResponse{data=services.MonthlySummary} "Summary"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, year, err := parsePeriod(c, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.GetMonthlySummary(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, summary)
}

// GetCategoryBreakdown splits one month's expenses by category.
// @Summary     Expense breakdown by category
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Month 1-12 (default current)"
// @Param       year  query int false "Year (default current)"
// @Success     200 {object} SuccessResponse{data=[]services.CategoryTotal} "Breakdown"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /analytics/category-breakdown [get]
func (h *AnalyticsHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, year, err := parsePeriod(c, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.transactionService.GetCategoryBreakdown(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, breakdown)
}

// GetTrend returns the last few monthly summaries, oldest first.
// @Summary     Monthly trend
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of months, 1-24 (default 6)"
// @Success     200 {object} SuccessResponse{data=[]services.MonthlySummary} "Trend"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := defaultTrendMonths
	if v := c.Query("months"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "months must be a number"))
			return
		}
		months = n
	}

	trend, err := h.transactionService.GetMonthlyTrend(userID, months, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, trend)
}
