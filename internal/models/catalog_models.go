package models

import "time"

// Category is a catalog grouping for products (menu sections).
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Product is a sellable catalog item.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" db:"name"`
	Price         float64   `json:"price" db:"price"`
	CategoryID    *int64    `json:"category_id,omitempty" db:"category_id"`
	CategoryName  *string   `json:"category_name,omitempty"`
	StockQuantity int       `json:"stock_quantity" db:"stock_quantity"`
	ImageURL      *string   `json:"image_url,omitempty" db:"image_url"`
	IsAvailable   bool      `json:"is_available" db:"is_available"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
