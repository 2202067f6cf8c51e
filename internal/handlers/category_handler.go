package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// CreateCategoryRequest represents the request body for creating a category.
// Subcategories inherit their parent's type, so type may be omitted when
// parent_id is set.
type CreateCategoryRequest struct {
	Name       string              `json:"name" binding:"required,min=1,max=50"`
	Type       models.CategoryType `json:"type" binding:"omitempty,category_type"`
	Icon       string              `json:"icon" binding:"max=50"`
	Color      string              `json:"color" binding:"omitempty,hex_color"`
	ParentID   *string             `json:"parent_id" binding:"omitempty,uuid"`
	OrderIndex *int                `json:"order_index" binding:"omitempty,min=0"`
}

// UpdateCategoryRequest represents the request body for updating a category
type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=50"`
	Icon  *string `json:"icon" binding:"omitempty,max=50"`
	Color *string `json:"color" binding:"omitempty,hex_color"`
}

// GetCategories lists the categories visible to the caller
// @Summary     List categories
// @Description Defaults merged with the caller's own categories, each parent carrying its subcategories. Anonymous callers see defaults only.
// @Tags        categories
// @Produce     json
// @Param       type query string false "Filter by type (income, expense, investment)"
// @Success     200 {object} SuccessResponse{data=[]models.Category} "Categories"
// @Failure     400 {object} middleware.ErrorResponse "Invalid type"
// @Failure     500 {object} middleware.ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var categoryType *models.CategoryType
	if v := c.Query("type"); v != "" {
		t := models.CategoryType(v)
		if !t.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "type must be income, expense or investment"))
			return
		}
		categoryType = &t
	}

	categories, err := h.categoryService.GetVisibleCategories(optionalUserID(c), categoryType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, categories)
}

// GetCategory returns one visible category
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} SuccessResponse{data=models.Category} "Category"
// @Failure     400 {object} middleware.ErrorResponse "Invalid category ID"
// @Failure     404 {object} middleware.ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetVisibleCategory(optionalUserID(c), categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, category)
}

// CreateCategory creates a category owned by the caller
// @Summary     Create category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} SuccessResponse{data=models.Category} "Created category"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Parent category not found"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	category, err := h.categoryService.CreateCategory(userID, services.CategoryInput{
		Name:       req.Name,
		Type:       req.Type,
		Icon:       req.Icon,
		Color:      req.Color,
		ParentID:   req.ParentID,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "category", category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.Name, "type": category.Type})

	respond(c, http.StatusCreated, category)
}

// CopyCategory gives the caller a private copy of a default category
// @Summary     Copy a default category
// @Description Returns the caller's existing copy when there is one.
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} SuccessResponse{data=models.Category} "User copy"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Category not found"
// @Router      /categories/{id}/copy [post]
func (h *CategoryHandler) CopyCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.CreateUserCopy(userID, categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCopyCategory, "category", category.ID, c.ClientIP(),
		map[string]interface{}{"source_id": categoryID})

	respond(c, http.StatusOK, category)
}

// UpdateCategory edits a category; editing a default edits the caller's copy
// @Summary     Update category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Category ID"
// @Param       request body UpdateCategoryRequest true "Fields to change"
// @Success     200 {object} SuccessResponse{data=models.Category} "Updated category"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Category not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	category, err := h.categoryService.UpdateCategory(userID, categoryID, services.CategoryPatch{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Icon != nil {
		changes["icon"] = *req.Icon
	}
	if req.Color != nil {
		changes["color"] = *req.Color
	}
	h.auditService.Log(userID, services.AuditActionUpdate, "category", category.ID, c.ClientIP(), changes)

	respond(c, http.StatusOK, category)
}

// DeleteCategory deactivates one of the caller's categories
// @Summary     Delete category
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} SuccessResponse{data=MessageResponse} "Category deleted"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     404 {object} middleware.ErrorResponse "Category not found"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(userID, categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "category", categoryID, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, "Category deleted")
}
