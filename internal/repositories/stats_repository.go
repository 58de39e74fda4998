package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resto_pos_backend/internal/models"
)

// StatsRepository defines the interface for daily sales rollup persistence.
type StatsRepository interface {
	GetByDate(day time.Time) (*models.DailyStats, error) // Returns ErrNotFound if no row exists for the day
	Save(executor SQLExecutor, stats *models.DailyStats) error
}

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db *sql.DB) StatsRepository {
	return &statsRepository{db: db}
}

// GetByDate fetches the rollup row whose stat_date matches the given day.
// The caller is expected to pass a midnight-normalized timestamp.
func (r *statsRepository) GetByDate(day time.Time) (*models.DailyStats, error) {
	stats := &models.DailyStats{}
	var categoryJSON, topProductsJSON, hourlyJSON []byte

	query := `SELECT id, stat_date, total_orders, orders_today, items_sold, items_sold_today,
	                 dine_in_orders, takeout_orders, category_stats, top_products, hourly_stats, last_updated
	          FROM daily_stats
	          WHERE stat_date = $1`
	err := r.db.QueryRow(query, day.Format("2006-01-02")).Scan(
		&stats.ID, &stats.StatDate, &stats.TotalOrders, &stats.OrdersToday, &stats.ItemsSold, &stats.ItemsSoldToday,
		&stats.DineInOrders, &stats.TakeoutOrders, &categoryJSON, &topProductsJSON, &hourlyJSON, &stats.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting daily stats for %s: %v", ErrDatabaseError, day.Format("2006-01-02"), err)
	}

	if err := json.Unmarshal(categoryJSON, &stats.CategoryStats); err != nil {
		return nil, fmt.Errorf("%w: decoding category stats: %v", ErrDatabaseError, err)
	}
	if err := json.Unmarshal(topProductsJSON, &stats.TopProducts); err != nil {
		return nil, fmt.Errorf("%w: decoding top products: %v", ErrDatabaseError, err)
	}
	if err := json.Unmarshal(hourlyJSON, &stats.HourlyStats); err != nil {
		return nil, fmt.Errorf("%w: decoding hourly stats: %v", ErrDatabaseError, err)
	}
	if stats.TopProducts == nil {
		stats.TopProducts = []models.TopProduct{}
	}
	if stats.HourlyStats == nil {
		stats.HourlyStats = map[int]int{}
	}
	return stats, nil
}

// Save upserts the rollup row for stats.StatDate. The unique constraint on
// stat_date guarantees at most one row per calendar day; concurrent writers
// for the same day are serialized at the service layer.
func (r *statsRepository) Save(executor SQLExecutor, stats *models.DailyStats) error {
	categoryJSON, err := json.Marshal(stats.CategoryStats)
	if err != nil {
		return fmt.Errorf("%w: encoding category stats: %v", ErrDatabaseError, err)
	}
	topProductsJSON, err := json.Marshal(stats.TopProducts)
	if err != nil {
		return fmt.Errorf("%w: encoding top products: %v", ErrDatabaseError, err)
	}
	hourlyJSON, err := json.Marshal(stats.HourlyStats)
	if err != nil {
		return fmt.Errorf("%w: encoding hourly stats: %v", ErrDatabaseError, err)
	}

	query := `INSERT INTO daily_stats
	            (stat_date, total_orders, orders_today, items_sold, items_sold_today,
	             dine_in_orders, takeout_orders, category_stats, top_products, hourly_stats, last_updated)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          ON CONFLICT (stat_date) DO UPDATE SET
	            total_orders = EXCLUDED.total_orders,
	            orders_today = EXCLUDED.orders_today,
	            items_sold = EXCLUDED.items_sold,
	            items_sold_today = EXCLUDED.items_sold_today,
	            dine_in_orders = EXCLUDED.dine_in_orders,
	            takeout_orders = EXCLUDED.takeout_orders,
	            category_stats = EXCLUDED.category_stats,
	            top_products = EXCLUDED.top_products,
	            hourly_stats = EXCLUDED.hourly_stats,
	            last_updated = EXCLUDED.last_updated
	          RETURNING id`

	err = executor.QueryRow(query,
		stats.StatDate.Format("2006-01-02"), stats.TotalOrders, stats.OrdersToday, stats.ItemsSold, stats.ItemsSoldToday,
		stats.DineInOrders, stats.TakeoutOrders, categoryJSON, topProductsJSON, hourlyJSON, stats.LastUpdated,
	).Scan(&stats.ID)
	if err != nil {
		return fmt.Errorf("%w: saving daily stats for %s: %v", ErrDatabaseError, stats.StatDate.Format("2006-01-02"), err)
	}
	return nil
}
