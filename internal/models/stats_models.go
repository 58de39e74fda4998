package models

import "time"

// Category buckets for line-item classification. The set is fixed; a line
// item lands in at most one bucket.
const (
	CategoryRice     = "Rice"
	CategorySizzling = "Sizzling"
	CategoryParty    = "Party"
	CategoryDrink    = "Drink"
	CategoryCafe     = "Cafe"
	CategoryMilk     = "Milk"
	CategoryFrappe   = "Frappe"
)

// MaxTopProducts bounds the length of DailyStats.TopProducts.
const MaxTopProducts = 10

// CategorySales holds cumulative quantities sold per category bucket.
// These counters are carried forward across days and never reset.
type CategorySales struct {
	Rice     int `json:"rice"`
	Sizzling int `json:"sizzling"`
	Party    int `json:"party"`
	Drink    int `json:"drink"`
	Cafe     int `json:"cafe"`
	Milk     int `json:"milk"`
	Frappe   int `json:"frappe"`
}

// Add adds quantity to the named bucket. Unknown bucket names are ignored.
func (c *CategorySales) Add(bucket string, quantity int) {
	switch bucket {
	case CategoryRice:
		c.Rice += quantity
	case CategorySizzling:
		c.Sizzling += quantity
	case CategoryParty:
		c.Party += quantity
	case CategoryDrink:
		c.Drink += quantity
	case CategoryCafe:
		c.Cafe += quantity
	case CategoryMilk:
		c.Milk += quantity
	case CategoryFrappe:
		c.Frappe += quantity
	}
}

// TopProduct is one entry of the bounded best-sellers list. Quantity is
// cumulative over the record's full history, not per day.
type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DailyStats is the per-day sales rollup. Exactly one row exists per
// calendar day, keyed by StatDate normalized to local midnight.
//
// Cumulative fields (TotalOrders, ItemsSold, DineInOrders, TakeoutOrders,
// CategoryStats, TopProducts, HourlyStats) are seeded from the previous
// day's row when a new day's row is created and only ever grow. OrdersToday
// and ItemsSoldToday start at zero on every new day.
type DailyStats struct {
	ID             int64         `json:"id"`
	StatDate       time.Time     `json:"date"`
	TotalOrders    int           `json:"total_orders"`
	OrdersToday    int           `json:"orders_today"`
	ItemsSold      int           `json:"items_sold"`
	ItemsSoldToday int           `json:"items_sold_today"`
	DineInOrders   int           `json:"dine_in_orders"`
	TakeoutOrders  int           `json:"takeout_orders"`
	CategoryStats  CategorySales `json:"category_stats"`
	TopProducts    []TopProduct  `json:"top_products"`
	HourlyStats    map[int]int   `json:"hourly_stats"`
	LastUpdated    time.Time     `json:"last_updated"`
}

// DashboardStats is the read shape returned to the dashboard endpoint.
//
// Several field names predate this service and are kept for frontend
// compatibility even though they are misleading: TotalProducts is the number
// of distinct entries currently in TopProducts (not the catalog size),
// TotalStocks is the cumulative items-sold counter (not inventory), and
// DineInToday/TakeoutToday are cumulative all-time counters, not daily ones.
type DashboardStats struct {
	TotalOrders    int           `json:"totalOrders"`
	TotalProducts  int           `json:"totalProducts"`
	TotalStocks    int           `json:"totalStocks"`
	OrdersToday    int           `json:"ordersToday"`
	ItemsSoldToday int           `json:"itemsSoldToday"`
	DineInToday    int           `json:"dineInToday"`
	TakeoutToday   int           `json:"takeoutToday"`
	CategoryStats  CategorySales `json:"categoryStats"`
	HourlyStats    map[int]int   `json:"hourlyStats"`
	TopProducts    []TopProduct  `json:"topProducts"`
}
