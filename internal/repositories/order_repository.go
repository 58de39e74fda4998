package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"resto_pos_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// OrderRepository defines the interface for order-related database operations.
// Orders are immutable once written; there are no update or delete methods.
type OrderRepository interface {
	CreateOrder(executor SQLExecutor, order *models.Order) (int64, error)
	CreateOrderItem(executor SQLExecutor, item *models.OrderItem) (int64, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, int, error) // orders, total count, error
	GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(executor SQLExecutor, order *models.Order) (int64, error) {
	query := `INSERT INTO orders (customer_name, order_type, total_amount, created_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		order.CustomerName, order.OrderType, order.TotalAmount, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating order: %v", ErrDatabaseError, err)
	}
	return order.ID, nil
}

func (r *orderRepository) CreateOrderItem(executor SQLExecutor, item *models.OrderItem) (int64, error) {
	query := `INSERT INTO order_items (order_id, name, price, quantity, image_url)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := executor.QueryRow(query,
		item.OrderID, item.Name, item.Price, item.Quantity, item.Image,
	).Scan(&item.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return 0, fmt.Errorf("%w: creating order item (constraint: %s): %v", ErrDatabaseError, pqErr.Constraint, err)
		}
		return 0, fmt.Errorf("%w: creating order item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *orderRepository) GetOrderByID(orderID int64) (*models.Order, error) {
	order := &models.Order{}
	query := `SELECT id, customer_name, order_type, total_amount, created_at
	          FROM orders
	          WHERE id = $1`
	err := r.db.QueryRow(query, orderID).Scan(
		&order.ID, &order.CustomerName, &order.OrderType, &order.TotalAmount, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order by ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return order, nil
}

func (r *orderRepository) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	orders := []models.Order{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT o.id, o.customer_name, o.order_type, o.total_amount, o.created_at,
               COUNT(*) OVER() as total_count
        FROM orders o
    `)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.Type != nil && *filters.Type != "" {
		conditions = append(conditions, fmt.Sprintf("o.order_type = $%d", argCounter))
		args = append(args, *filters.Type)
		argCounter++
	}
	if filters.Date != nil && *filters.Date != "" {
		parsedDate, err := time.Parse("2006-01-02", *filters.Date)
		if err == nil {
			startOfDay := time.Date(parsedDate.Year(), parsedDate.Month(), parsedDate.Day(), 0, 0, 0, 0, parsedDate.Location())
			endOfDay := startOfDay.AddDate(0, 0, 1).Add(-time.Nanosecond)
			conditions = append(conditions, fmt.Sprintf("o.created_at BETWEEN $%d AND $%d", argCounter, argCounter+1))
			args = append(args, startOfDay, endOfDay)
			argCounter += 2
		}
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY o.created_at DESC")

	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCounter))
		args = append(args, filters.PageSize)
		argCounter++
		if filters.Page > 0 {
			offset := (filters.Page - 1) * filters.PageSize
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCounter))
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID, &o.CustomerName, &o.OrderType, &o.TotalAmount, &o.CreatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, totalCount, nil
}

func (r *orderRepository) GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	query := `SELECT id, order_id, name, price, quantity, image_url
	          FROM order_items
	          WHERE order_id = $1
	          ORDER BY id`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying order items for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.Name, &item.Price, &item.Quantity, &item.Image)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order item for order ID %d: %v", ErrDatabaseError, orderID, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order item rows for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return items, nil
}
