package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/export"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/uuid"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	CategoryID         string                 `json:"category_id" binding:"required,uuid"`
	Type               models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount             *decimal.Decimal       `json:"amount" binding:"required"`
	Description        *string                `json:"description" binding:"omitempty,max=500"`
	Subcategory        *string                `json:"subcategory" binding:"omitempty,max=50"`
	Note               *string                `json:"note" binding:"omitempty,max=1000"`
	TransactionDate    string                 `json:"transaction_date" binding:"required"`
	PaymentMethod      *string                `json:"payment_method" binding:"omitempty,payment_method"`
	IsRecurring        bool                   `json:"is_recurring"`
	RecurringFrequency *string                `json:"recurring_frequency" binding:"omitempty,recurrence_frequency"`
	Tags               []string               `json:"tags" binding:"omitempty,max=20,dive,min=1,max=32"`
	AttachmentURL      *string                `json:"attachment_url" binding:"omitempty,url,max=2048"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction
type UpdateTransactionRequest struct {
	CategoryID      *string                 `json:"category_id" binding:"omitempty,uuid"`
	Type            *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	Amount          *decimal.Decimal        `json:"amount"`
	Description     *string                 `json:"description" binding:"omitempty,max=500"`
	Subcategory     *string                 `json:"subcategory" binding:"omitempty,max=50"`
	Note            *string                 `json:"note" binding:"omitempty,max=1000"`
	TransactionDate *string                 `json:"transaction_date"`
	PaymentMethod   *string                 `json:"payment_method" binding:"omitempty,payment_method"`
}

// TransactionListResponse is one page of transactions.
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   pagination.Meta      `json:"pagination"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income, expense or investment against a visible category
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} SuccessResponse{data=models.Transaction} "Transaction created"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Category not found"
// @Failure     500 {object} middleware.ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	date, err := parseDate(req.TransactionDate, "transaction_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.CreateTransaction(userID, services.TransactionInput{
		CategoryID:         req.CategoryID,
		Type:               req.Type,
		Amount:             *req.Amount,
		Description:        req.Description,
		Subcategory:        req.Subcategory,
		Note:               req.Note,
		TransactionDate:    date,
		PaymentMethod:      req.PaymentMethod,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		Tags:               req.Tags,
		AttachmentURL:      req.AttachmentURL,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "transaction", tx.ID, c.ClientIP(),
		map[string]interface{}{"type": tx.Type, "amount": tx.Amount.String(), "category_id": tx.CategoryID})

	respond(c, http.StatusCreated, tx)
}

// GetUserTransactions handles listing transactions for the authenticated user
// @Summary     List transactions
// @Description Newest first, paginated, with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       type      query string false "Filter by type (income, expense, investment)"
// @Param       category  query string false "Filter by category ID"
// @Param       startDate query string false "Earliest date, inclusive (YYYY-MM-DD)"
// @Param       endDate   query string false "Latest date, inclusive (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       limit     query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} SuccessResponse{data=TransactionListResponse} "Paginated transactions"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     500 {object} middleware.ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, TransactionListResponse{
		Transactions: result.Data,
		Pagination:   result.Pagination,
	})
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		if !txType.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrValidation, "type must be income, expense or investment")
		}
		filter.Type = &txType
	}

	if v := c.Query("category"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrValidation, "invalid category")
		}
		filter.CategoryID = &id
	}

	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v, "startDate")
		if err != nil {
			return filter, err
		}
		filter.StartDate = &t
	}

	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v, "endDate")
		if err != nil {
			return filter, err
		}
		filter.EndDate = &t
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return filter, apperrors.WithMessage(apperrors.ErrValidation, "endDate cannot be before startDate")
	}

	return filter, nil
}

// ExportTransactions streams the filtered transactions as a file
// @Summary     Export transactions
// @Tags        transactions
// @Produce     text/csv
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       format    query string false "csv (default) or xlsx"
// @Param       type      query string false "Filter by type"
// @Param       category  query string false "Filter by category ID"
// @Param       startDate query string false "Earliest date, inclusive (YYYY-MM-DD)"
// @Param       endDate   query string false "Latest date, inclusive (YYYY-MM-DD)"
// @Success     200 {file} file "Export file"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "format must be csv or xlsx"))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListForExport(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, transactions); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrServerError, err))
		return
	}

	filename := format.Filename("transactions_" + time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} SuccessResponse{data=models.Transaction} "Transaction details"
// @Failure     400 {object} middleware.ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, tx)
}

// UpdateTransaction handles partial updates of a transaction
// @Summary     Update transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to change"
// @Success     200 {object} SuccessResponse{data=models.Transaction} "Updated transaction"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	date, err := parseOptionalDate(req.TransactionDate, "transaction_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	patch := services.TransactionPatch{
		CategoryID:      req.CategoryID,
		Type:            req.Type,
		Amount:          req.Amount,
		Description:     req.Description,
		Subcategory:     req.Subcategory,
		Note:            req.Note,
		TransactionDate: date,
		PaymentMethod:   req.PaymentMethod,
	}
	if patch.IsEmpty() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "no fields to update"))
		return
	}

	tx, err := h.transactionService.UpdateTransaction(userID, transactionID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionUpdate, "transaction", tx.ID, c.ClientIP(),
		map[string]interface{}{"type": tx.Type, "amount": tx.Amount.String()})

	respond(c, http.StatusOK, tx)
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} SuccessResponse{data=MessageResponse} "Transaction deleted"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.transactionService.DeleteTransaction(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "transaction", transactionID, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, "Transaction deleted")
}
