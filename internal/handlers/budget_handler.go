package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
	now           func() time.Time
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService, now: time.Now}
}

// SetBudgetRequest represents the request payload for creating or replacing
// a monthly budget. Month and year default to the current month.
type SetBudgetRequest struct {
	CategoryID     string           `json:"category_id" binding:"required,uuid"`
	Amount         *decimal.Decimal `json:"amount" binding:"required"`
	Month          *int             `json:"month" binding:"omitempty,min=1,max=12"`
	Year           *int             `json:"year" binding:"omitempty,min=1900,max=9999"`
	AlertThreshold *int             `json:"alert_threshold" binding:"omitempty,min=1,max=100"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Amount         *decimal.Decimal `json:"amount"`
	AlertThreshold *int             `json:"alert_threshold" binding:"omitempty,min=1,max=100"`
}

// SetBudget creates the budget for a category and month, or replaces the
// amount of the existing one.
// @Summary     Create or update a budget
// @Description One active budget exists per category and month; posting again replaces its amount.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetBudgetRequest true "Budget details"
// @Success     200 {object} SuccessResponse{data=models.Budget} "Budget updated"
// @Success     201 {object} SuccessResponse{data=models.Budget} "Budget created"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Category not found"
// @Failure     500 {object} middleware.ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	now := h.now()
	month, year := int(now.Month()), now.Year()
	if req.Month != nil {
		month = *req.Month
	}
	if req.Year != nil {
		year = *req.Year
	}

	budget, created, err := h.budgetService.UpsertBudget(userID, services.BudgetInput{
		CategoryID:     req.CategoryID,
		Amount:         *req.Amount,
		Month:          month,
		Year:           year,
		AlertThreshold: req.AlertThreshold,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	action, status := services.AuditActionUpdate, http.StatusOK
	if created {
		action, status = services.AuditActionCreate, http.StatusCreated
	}
	h.auditService.Log(userID, action, "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"category_id": budget.CategoryID, "amount": budget.Amount.String(), "month": month, "year": year})

	respond(c, status, budget)
}

// GetBudgets lists the month's budgets with what has been spent against them.
// @Summary     List budgets with spending
// @Description Sorted by percentage used, highest first
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Month 1-12 (default current)"
// @Param       year  query int false "Year (default current)"
// @Success     200 {object} SuccessResponse{data=[]services.BudgetStatus} "Budgets"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
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

	budgets, err := h.budgetService.GetBudgetsWithSpent(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, budgets)
}

// GetBudgetAlerts lists the month's budgets at or past their alert threshold.
// @Summary     Budget alerts
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Month 1-12 (default current)"
// @Param       year  query int false "Year (default current)"
// @Success     200 {object} SuccessResponse{data=[]services.BudgetStatus} "Budgets needing attention"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /budgets/alerts [get]
func (h *BudgetHandler) GetBudgetAlerts(c *gin.Context) {
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

	alerts, err := h.budgetService.GetBudgetAlerts(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, alerts)
}

// GetBudget handles retrieving a specific budget.
// @Summary     Get budget by ID
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} SuccessResponse{data=models.Budget} "Budget details"
// @Failure     400 {object} middleware.ErrorResponse "Invalid budget ID"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Budget not found"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, budget)
}

// UpdateBudget handles updating an existing budget.
// @Summary     Update budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Fields to change"
// @Success     200 {object} SuccessResponse{data=models.Budget} "Updated budget"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input or budget ID"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Budget not found"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	if req.Amount == nil && req.AlertThreshold == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "no fields to update"))
		return
	}

	budget, err := h.budgetService.UpdateBudget(userID, budgetID, services.BudgetPatch{
		Amount:         req.Amount,
		AlertThreshold: req.AlertThreshold,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionUpdate, "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"amount": budget.Amount.String(), "alert_threshold": budget.AlertThreshold})

	respond(c, http.StatusOK, budget)
}

// DeleteBudget handles deactivating a budget.
// @Summary     Delete budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} SuccessResponse{data=MessageResponse} "Budget deleted"
// @Failure     400 {object} middleware.ErrorResponse "Invalid budget ID"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Budget not found"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "budget", budgetID, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, "Budget deleted")
}
