package services

import (
	"database/sql"
	"errors"
	"fmt"

	"resto_pos_backend/internal/metrics"
	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
	"resto_pos_backend/pkg/utils"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// --- Data Transfer Objects (DTOs) ---

// CreateOrderItemRequest is one line item of an order submission. Price and
// image are optional; a missing or non-positive quantity defaults to 1.
type CreateOrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// CreateOrderRequest is used for creating a new order.
type CreateOrderRequest struct {
	CustomerName string                   `json:"customer_name"`
	Type         string                   `json:"type"`
	Items        []CreateOrderItemRequest `json:"items" binding:"required,dive"`
}

// --- OrderService Interface ---

type OrderService interface {
	CreateOrder(req CreateOrderRequest) (*models.Order, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, int, error)
	GetOrderByID(orderID int64) (*models.Order, error)
}

// --- orderService Implementation ---

type orderService struct {
	orderRepo    repositories.OrderRepository
	statsService StatsService
	db           *sql.DB // For managing transactions
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(or repositories.OrderRepository, ss StatsService, db *sql.DB) OrderService {
	return &orderService{
		orderRepo:    or,
		statsService: ss,
		db:           db,
	}
}

// CreateOrder persists an order submission with its line items in one
// transaction, then feeds the payload to the stats aggregator. The stats
// update is best-effort: a persistence failure there is logged and never
// surfaced to the caller, so the order-save response succeeds on its own.
func (s *orderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	var totalAmount float64
	itemsToCreate := make([]models.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		qty := normalizeQuantity(itemReq.Quantity)
		totalAmount += itemReq.Price * float64(qty)

		item := models.OrderItem{
			Name:     itemReq.Name,
			Price:    itemReq.Price,
			Quantity: qty,
		}
		if itemReq.Image != "" {
			image := itemReq.Image
			item.Image = &image
		}
		itemsToCreate = append(itemsToCreate, item)
	}

	order := models.Order{
		OrderType:   req.Type,
		TotalAmount: totalAmount,
	}
	if req.CustomerName != "" {
		name := req.CustomerName
		order.CustomerName = &name
	}

	createdOrderID, repoErr := s.orderRepo.CreateOrder(tx, &order)
	if repoErr != nil {
		return nil, fmt.Errorf("failed to create order record: %w", repoErr)
	}
	order.ID = createdOrderID

	for i := range itemsToCreate {
		itemsToCreate[i].OrderID = createdOrderID
		if _, repoErr = s.orderRepo.CreateOrderItem(tx, &itemsToCreate[i]); repoErr != nil {
			return nil, fmt.Errorf("failed to create order item %q: %w", itemsToCreate[i].Name, repoErr)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}
	order.Items = itemsToCreate
	metrics.OrdersCreated.Inc()

	s.applyStats(&order)

	return &order, nil
}

// applyStats forwards the committed order to the stats aggregator. Failures
// here are logged and counted but never propagated: the order is already
// saved and the customer-facing response must not depend on the rollup.
func (s *orderService) applyStats(order *models.Order) {
	payload := OrderStatsPayload{Type: order.OrderType}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, StatsLineItem{Name: item.Name, Quantity: item.Quantity})
	}

	if _, err := s.statsService.UpdateStats(payload); err != nil {
		utils.LogError(err, fmt.Sprintf("failed to update daily stats for order %d", order.ID))
		metrics.StatsUpdates.WithLabelValues("error").Inc()
		return
	}
	metrics.StatsUpdates.WithLabelValues("ok").Inc()
}

func (s *orderService) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	orders, totalCount, err := s.orderRepo.GetOrders(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, totalCount, nil
}

func (s *orderService) GetOrderByID(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID from repository: %w", err)
	}

	items, err := s.orderRepo.GetOrderItemsByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items for order %d: %w", orderID, err)
	}
	order.Items = items
	return order, nil
}
