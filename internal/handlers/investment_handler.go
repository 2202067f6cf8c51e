package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// InvestmentHandler serves net worth and the holdings behind it.
type InvestmentHandler struct {
	netWorthService services.NetWorthServicer
	auditService    services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(netWorthService services.NetWorthServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{netWorthService: netWorthService, auditService: auditService}
}

// CreateInvestmentRequest represents the request payload for adding a holding.
type CreateInvestmentRequest struct {
	Name         string                `json:"name" binding:"required,min=1,max=100"`
	Type         models.InvestmentKind `json:"type" binding:"required,investment_kind"`
	Category     *string               `json:"category" binding:"omitempty,max=64"`
	InitialValue *decimal.Decimal      `json:"initial_value" binding:"required"`
	CurrentValue *decimal.Decimal      `json:"current_value"`
	Notes        *string               `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateInvestmentRequest represents the request payload for updating a holding.
type UpdateInvestmentRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Category     *string          `json:"category" binding:"omitempty,max=64"`
	CurrentValue *decimal.Decimal `json:"current_value"`
	Notes        *string          `json:"notes" binding:"omitempty,max=1000"`
}

// GetNetWorth returns the caller's all-time financial position.
// @Summary     Net worth
// @Description Income, expenses and investments from transactions, plus holdings
// @Tags        networth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SuccessResponse{data=services.NetWorth} "Net worth"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     500 {object} middleware.ErrorResponse "Server error"
// @Router      /networth [get]
func (h *InvestmentHandler) GetNetWorth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	netWorth, err := h.netWorthService.GetNetWorth(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, netWorth)
}

// GetInvestments lists the caller's holdings.
// @Summary     List holdings
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SuccessResponse{data=[]models.Investment} "Holdings"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investments, err := h.netWorthService.GetInvestments(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, investments)
}

// CreateInvestment adds a holding.
// @Summary     Add holding
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInvestmentRequest true "Holding details"
// @Success     201 {object} SuccessResponse{data=models.Investment} "Holding created"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	investment, err := h.netWorthService.CreateInvestment(userID, services.InvestmentInput{
		Name:         req.Name,
		Kind:         req.Type,
		Category:     req.Category,
		InitialValue: *req.InitialValue,
		CurrentValue: req.CurrentValue,
		Notes:        req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "investment", investment.ID, c.ClientIP(),
		map[string]interface{}{"name": investment.Name, "type": investment.Kind})

	respond(c, http.StatusCreated, investment)
}

// UpdateInvestment changes a holding.
// @Summary     Update holding
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Investment ID"
// @Param       request body UpdateInvestmentRequest true "Fields to change"
// @Success     200 {object} SuccessResponse{data=models.Investment} "Updated holding"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Investment not found"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	investment, err := h.netWorthService.UpdateInvestment(userID, investmentID, services.InvestmentPatch{
		Name:         req.Name,
		Category:     req.Category,
		CurrentValue: req.CurrentValue,
		Notes:        req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionUpdate, "investment", investment.ID, c.ClientIP(),
		map[string]interface{}{"current_value": investment.CurrentValue.String()})

	respond(c, http.StatusOK, investment)
}

// DeleteInvestment removes a holding.
// @Summary     Delete holding
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} SuccessResponse{data=MessageResponse} "Holding deleted"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Investment not found"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.netWorthService.DeleteInvestment(userID, investmentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "investment", investmentID, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, "Investment deleted")
}
