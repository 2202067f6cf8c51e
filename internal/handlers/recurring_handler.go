package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// RecurringHandler handles recurring transaction templates.
type RecurringHandler struct {
	recurringService services.RecurringServicer
	auditService     services.AuditServicer
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringService services.RecurringServicer, auditService services.AuditServicer) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService, auditService: auditService}
}

// CreateRecurringRequest represents the request payload for a new template.
type CreateRecurringRequest struct {
	CategoryID  string                     `json:"category_id" binding:"required,uuid"`
	Type        models.TransactionType     `json:"type" binding:"required,transaction_type"`
	Amount      *decimal.Decimal           `json:"amount" binding:"required"`
	Description *string                    `json:"description" binding:"omitempty,max=500"`
	Frequency   models.RecurrenceFrequency `json:"frequency" binding:"required,recurrence_frequency"`
	StartDate   string                     `json:"start_date" binding:"required"`
	EndDate     *string                    `json:"end_date"`
}

// GetRecurring lists the caller's active templates.
// @Summary     List recurring templates
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SuccessResponse{data=[]models.RecurringTransaction} "Templates"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /recurring [get]
func (h *RecurringHandler) GetRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.recurringService.GetRecurringTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, items)
}

// CreateRecurring stores a template. Nothing is posted automatically.
// @Summary     Create recurring template
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRecurringRequest true "Template details"
// @Success     201 {object} SuccessResponse{data=models.RecurringTransaction} "Template created"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Category not found"
// @Router      /recurring [post]
func (h *RecurringHandler) CreateRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseOptionalDate(req.EndDate, "end_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.recurringService.CreateRecurringTransaction(userID, services.RecurringInput{
		CategoryID:  req.CategoryID,
		Type:        req.Type,
		Amount:      *req.Amount,
		Description: req.Description,
		Frequency:   req.Frequency,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "recurring_transaction", item.ID, c.ClientIP(),
		map[string]interface{}{"frequency": item.Frequency, "amount": item.Amount.String()})

	respond(c, http.StatusCreated, item)
}

// DeleteRecurring deactivates a template.
// @Summary     Delete recurring template
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Template ID"
// @Success     200 {object} SuccessResponse{data=MessageResponse} "Template deleted"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Recurring transaction not found"
// @Router      /recurring/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recurringID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeleteRecurringTransaction(userID, recurringID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "recurring_transaction", recurringID, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, "Recurring transaction deleted")
}
