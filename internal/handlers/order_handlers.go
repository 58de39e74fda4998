package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// CreateOrder handles the submission of a new order with its items.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateOrder: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	createdOrder, err := h.orderService.CreateOrder(req)
	if err != nil {
		utils.LogError(err, "CreateOrder: Error from orderService.CreateOrder")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order payload.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, createdOrder)
}

// GetOrders handles fetching orders with filters.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var filters models.OrderFilters

	if orderType := c.Query("type"); orderType != "" {
		filters.Type = &orderType
	}
	if date := c.Query("date"); date != "" {
		filters.Date = &date
	}
	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			utils.RespondValidationFailed(c, "page must be a positive integer")
			return
		}
		filters.Page = page
	} else {
		filters.Page = 1
	}
	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize <= 0 {
			utils.RespondValidationFailed(c, "page_size must be a positive integer")
			return
		}
		filters.PageSize = pageSize
	} else {
		filters.PageSize = 10
	}

	orders, totalCount, err := h.orderService.GetOrders(filters)
	if err != nil {
		utils.LogError(err, "GetOrders: Error from orderService.GetOrders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":      orders,
		"total_count": totalCount,
		"page":        filters.Page,
		"page_size":   filters.PageSize,
	})
}

// GetOrderByID handles fetching a single order with its items.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid order ID format.")
		return
	}

	order, err := h.orderService.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", ""))
			return
		}
		utils.LogError(err, "GetOrderByID: Error from orderService.GetOrderByID")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, order)
}
