package models

import "time"

// Order type values as sent by the POS frontend. Anything else counts as
// neither dine-in nor takeout.
const (
	OrderTypeDineIn  = "Dine In"
	OrderTypeTakeOut = "Take Out"
)

// Order is an immutable record of a submitted order. Once written it is
// never updated; the stats rollup is derived from the submission payload,
// not from re-reading these rows.
type Order struct {
	ID           int64       `json:"id"`
	CustomerName *string     `json:"customer_name,omitempty"`
	OrderType    string      `json:"type"`
	TotalAmount  float64     `json:"total_amount"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
}

// OrderItem is a line-item snapshot: product name and price at sale time.
type OrderItem struct {
	ID       int64   `json:"id"`
	OrderID  int64   `json:"order_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    *string `json:"image,omitempty"`
}

// OrderFilters defines the available filters for querying orders.
// This struct is used by both the service and repository layers.
type OrderFilters struct {
	Type     *string `form:"type"`
	Date     *string `form:"date"` // Expected format YYYY-MM-DD
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}
