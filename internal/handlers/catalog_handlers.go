package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

func (h *CatalogHandler) respondCatalogError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid input.", err.Error()))
	case errors.Is(err, services.ErrDuplicateName):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Name already exists.", err.Error()))
	case errors.Is(err, services.ErrCategoryNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found.", ""))
	case errors.Is(err, services.ErrProductNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", ""))
	default:
		utils.LogError(err, action+": catalog service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Catalog operation failed.", "Internal error"))
	}
}

// --- Category Handlers ---

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	category, err := h.catalogService.CreateCategory(req)
	if err != nil {
		h.respondCatalogError(c, err, "CreateCategory")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories()
	if err != nil {
		h.respondCatalogError(c, err, "GetCategories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategoryByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid category ID format.")
		return
	}
	category, err := h.catalogService.GetCategoryByID(id)
	if err != nil {
		h.respondCatalogError(c, err, "GetCategoryByID")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid category ID format.")
		return
	}
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	category, err := h.catalogService.UpdateCategory(id, req)
	if err != nil {
		h.respondCatalogError(c, err, "UpdateCategory")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid category ID format.")
		return
	}
	if err := h.catalogService.DeleteCategory(id); err != nil {
		h.respondCatalogError(c, err, "DeleteCategory")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// --- Product Handlers ---

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	product, err := h.catalogService.CreateProduct(req)
	if err != nil {
		h.respondCatalogError(c, err, "CreateProduct")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var categoryID *int64
	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		id, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			utils.RespondValidationFailed(c, "Invalid category_id format.")
			return
		}
		categoryID = &id
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p <= 0 {
			utils.RespondValidationFailed(c, "page must be a positive integer")
			return
		}
		page = p
	}
	pageSize := 20
	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		ps, err := strconv.Atoi(pageSizeStr)
		if err != nil || ps <= 0 {
			utils.RespondValidationFailed(c, "page_size must be a positive integer")
			return
		}
		pageSize = ps
	}

	products, totalCount, err := h.catalogService.GetProducts(categoryID, page, pageSize)
	if err != nil {
		h.respondCatalogError(c, err, "GetProducts")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products":    products,
		"total_count": totalCount,
		"page":        page,
		"page_size":   pageSize,
	})
}

func (h *CatalogHandler) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid product ID format.")
		return
	}
	product, err := h.catalogService.GetProductByID(id)
	if err != nil {
		h.respondCatalogError(c, err, "GetProductByID")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid product ID format.")
		return
	}
	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	product, err := h.catalogService.UpdateProduct(id, req)
	if err != nil {
		h.respondCatalogError(c, err, "UpdateProduct")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid product ID format.")
		return
	}
	if err := h.catalogService.DeleteProduct(id); err != nil {
		h.respondCatalogError(c, err, "DeleteProduct")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
