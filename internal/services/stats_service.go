package services

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
)

// ErrValidation is returned for malformed service input.
var ErrValidation = errors.New("validation error")

// StatsLineItem is one order line as seen by the aggregator.
type StatsLineItem struct {
	Name     string
	Quantity int
}

// OrderStatsPayload is the slice of an order submission the aggregator
// consumes: line items plus the order type.
type OrderStatsPayload struct {
	Items []StatsLineItem
	Type  string
}

// --- StatsService Interface ---

// StatsService maintains the per-day sales rollup and serves the dashboard
// read path.
type StatsService interface {
	UpdateStats(payload OrderStatsPayload) (*models.DailyStats, error)
	GetDashboardStats() (*models.DashboardStats, error)
}

// Keyword rules for category classification. Rule order matters: the first
// bucket whose keywords match wins and the item is counted nowhere else.
// Because Rice is checked before Sizzling, a name like "Sizzling Pork Sisig"
// lands in Rice via "pork".
var (
	riceKeywords     = []string{"rice", "bulgogi", "lechon", "chicken", "adobo", "shanghai", "fish", "dory", "pork"}
	sizzlingKeywords = []string{"sizzling", "sisig", "liempo", "porkchop"}
	partyKeywords    = []string{"pancit", "spaghetti", "party"}
	drinkKeywords    = []string{"lemonade", "soda"}
	cafeKeywords     = []string{"cafe", "americano", "latte", "macchiato", "coffee"}
)

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// classifyItemName maps a line-item name to its category bucket, or ""
// when no rule matches. Matching is case-insensitive.
func classifyItemName(name string) string {
	n := strings.ToLower(name)
	switch {
	case containsAny(n, riceKeywords):
		return models.CategoryRice
	case containsAny(n, sizzlingKeywords):
		return models.CategorySizzling
	case containsAny(n, partyKeywords):
		return models.CategoryParty
	case containsAny(n, drinkKeywords), strings.Contains(n, "red tea") && !strings.Contains(n, "milk"):
		return models.CategoryDrink
	case containsAny(n, cafeKeywords):
		return models.CategoryCafe
	case strings.Contains(n, "milk tea"), strings.Contains(n, "matcha green tea"):
		return models.CategoryMilk
	case strings.Contains(n, "frappe"), strings.Contains(n, "cookies & cream"):
		return models.CategoryFrappe
	}
	return ""
}

// dayLocks serializes rollup updates per day key so two orders arriving
// concurrently for the same day cannot lose each other's increments in the
// read-modify-write cycle.
type dayLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newDayLocks() *dayLocks {
	return &dayLocks{locks: make(map[string]*sync.Mutex)}
}

func (d *dayLocks) forKey(key string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.locks[key]
	if !ok {
		l = &sync.Mutex{}
		d.locks[key] = l
	}
	return l
}

// --- statsService Implementation ---

type statsService struct {
	statsRepo repositories.StatsRepository
	db        *sql.DB
	locks     *dayLocks
	now       func() time.Time
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(statsRepo repositories.StatsRepository, db *sql.DB) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		db:        db,
		locks:     newDayLocks(),
		now:       time.Now,
	}
}

// midnight normalizes t to 00:00:00 in its own location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// UpdateStats applies one order submission to today's rollup row. The row is
// created lazily on the first order of a day, seeding all cumulative
// counters from yesterday's row (carry-forward); the daily-only counters
// start at zero. OrdersToday and ItemsSoldToday count only this day's
// activity, everything else accumulates across the record's full history.
func (s *statsService) UpdateStats(payload OrderStatsPayload) (*models.DailyStats, error) {
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("%w: order payload has no line items", ErrValidation)
	}

	now := s.now()
	today := midnight(now)
	dayKey := today.Format("2006-01-02")

	lock := s.locks.forKey(dayKey)
	lock.Lock()
	defer lock.Unlock()

	stats, err := s.statsRepo.GetByDate(today)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to load daily stats: %w", err)
		}
		stats, err = s.newDayRecord(today)
		if err != nil {
			return nil, err
		}
	}

	stats.TotalOrders++
	stats.OrdersToday++

	itemsInOrder := 0
	for _, item := range payload.Items {
		itemsInOrder += normalizeQuantity(item.Quantity)
	}
	stats.ItemsSold += itemsInOrder
	stats.ItemsSoldToday += itemsInOrder

	switch payload.Type {
	case models.OrderTypeDineIn:
		stats.DineInOrders++
	case models.OrderTypeTakeOut:
		stats.TakeoutOrders++
	}

	stats.HourlyStats[now.Hour()]++

	for _, item := range payload.Items {
		qty := normalizeQuantity(item.Quantity)
		if bucket := classifyItemName(item.Name); bucket != "" {
			stats.CategoryStats.Add(bucket, qty)
		}
		stats.TopProducts = upsertTopProduct(stats.TopProducts, item.Name, qty)
	}
	stats.TopProducts = sortAndTruncateTopProducts(stats.TopProducts)

	stats.LastUpdated = now
	if err := s.statsRepo.Save(s.db, stats); err != nil {
		return nil, fmt.Errorf("failed to persist daily stats: %w", err)
	}
	return stats, nil
}

// newDayRecord builds today's rollup, copying the cumulative counters from
// yesterday's row when one exists and zero-initializing otherwise.
func (s *statsService) newDayRecord(today time.Time) (*models.DailyStats, error) {
	stats := &models.DailyStats{
		StatDate:    today,
		TopProducts: []models.TopProduct{},
		HourlyStats: map[int]int{},
	}

	yesterday := today.AddDate(0, 0, -1)
	prev, err := s.statsRepo.GetByDate(yesterday)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return stats, nil
		}
		return nil, fmt.Errorf("failed to load previous day stats: %w", err)
	}

	stats.TotalOrders = prev.TotalOrders
	stats.ItemsSold = prev.ItemsSold
	stats.DineInOrders = prev.DineInOrders
	stats.TakeoutOrders = prev.TakeoutOrders
	stats.CategoryStats = prev.CategoryStats
	stats.TopProducts = append(stats.TopProducts, prev.TopProducts...)
	for hour, count := range prev.HourlyStats {
		stats.HourlyStats[hour] = count
	}
	return stats, nil
}

// normalizeQuantity clamps a missing or non-positive quantity to 1, per the
// upstream payload contract.
func normalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// upsertTopProduct adds quantity to the entry matching name exactly, or
// appends a new entry if none exists.
func upsertTopProduct(products []models.TopProduct, name string, quantity int) []models.TopProduct {
	for i := range products {
		if products[i].Name == name {
			products[i].Quantity += quantity
			return products
		}
	}
	return append(products, models.TopProduct{Name: name, Quantity: quantity})
}

// sortAndTruncateTopProducts re-sorts descending by quantity (stable on
// ties, preserving prior order) and keeps at most MaxTopProducts entries.
func sortAndTruncateTopProducts(products []models.TopProduct) []models.TopProduct {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})
	if len(products) > models.MaxTopProducts {
		products = products[:models.MaxTopProducts]
	}
	return products
}

// GetDashboardStats returns today's rollup projected into the dashboard
// shape. A missing row for today yields a fully zeroed shape, which callers
// cannot distinguish from a present-but-zero record; a store failure is
// returned as an error, never silently replaced by the default.
func (s *statsService) GetDashboardStats() (*models.DashboardStats, error) {
	today := midnight(s.now())

	stats, err := s.statsRepo.GetByDate(today)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &models.DashboardStats{
				TopProducts: []models.TopProduct{},
				HourlyStats: map[int]int{},
			}, nil
		}
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	return &models.DashboardStats{
		TotalOrders:    stats.TotalOrders,
		TotalProducts:  len(stats.TopProducts),
		TotalStocks:    stats.ItemsSold,
		OrdersToday:    stats.OrdersToday,
		ItemsSoldToday: stats.ItemsSoldToday,
		DineInToday:    stats.DineInOrders,
		TakeoutToday:   stats.TakeoutOrders,
		CategoryStats:  stats.CategoryStats,
		HourlyStats:    stats.HourlyStats,
		TopProducts:    stats.TopProducts,
	}, nil
}
