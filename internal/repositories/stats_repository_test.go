package repositories

import (
	"testing"
	"time"

	"resto_pos_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsColumns() []string {
	return []string{
		"id", "stat_date", "total_orders", "orders_today", "items_sold", "items_sold_today",
		"dine_in_orders", "takeout_orders", "category_stats", "top_products", "hourly_stats", "last_updated",
	}
}

func TestStatsRepository_GetByDate_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepository(db)
	day := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows(statsColumns()).AddRow(
		1, day, 6, 1, 14, 2, 3, 3,
		[]byte(`{"rice":6,"sizzling":0,"party":0,"drink":0,"cafe":8,"milk":0,"frappe":0}`),
		[]byte(`[{"name":"Cafe Latte Tall","quantity":8},{"name":"Plain Rice","quantity":6}]`),
		[]byte(`{"11":2,"18":3,"9":1}`),
		now,
	)

	mock.ExpectQuery(`SELECT id, stat_date, total_orders`).
		WithArgs("2024-05-12").
		WillReturnRows(rows)

	stats, err := repo.GetByDate(day)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.ID)
	assert.Equal(t, 6, stats.TotalOrders)
	assert.Equal(t, 1, stats.OrdersToday)
	assert.Equal(t, 6, stats.CategoryStats.Rice)
	assert.Equal(t, 8, stats.CategoryStats.Cafe)
	require.Len(t, stats.TopProducts, 2)
	assert.Equal(t, "Cafe Latte Tall", stats.TopProducts[0].Name)
	assert.Equal(t, 2, stats.HourlyStats[11])
	assert.Equal(t, 1, stats.HourlyStats[9])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_GetByDate_NullCollectionsBecomeEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepository(db)
	day := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(statsColumns()).AddRow(
		1, day, 0, 0, 0, 0, 0, 0,
		[]byte(`{}`), []byte(`null`), []byte(`null`), time.Now(),
	)
	mock.ExpectQuery(`SELECT id, stat_date, total_orders`).
		WithArgs("2024-05-12").
		WillReturnRows(rows)

	stats, err := repo.GetByDate(day)
	require.NoError(t, err)

	assert.NotNil(t, stats.TopProducts)
	assert.Empty(t, stats.TopProducts)
	assert.NotNil(t, stats.HourlyStats)
	assert.Empty(t, stats.HourlyStats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_GetByDate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepository(db)
	day := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, stat_date, total_orders`).
		WithArgs("2024-05-12").
		WillReturnRows(sqlmock.NewRows(statsColumns()))

	stats, err := repo.GetByDate(day)
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_Save_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepository(db)
	stats := &models.DailyStats{
		StatDate:       time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		TotalOrders:    6,
		OrdersToday:    1,
		ItemsSold:      14,
		ItemsSoldToday: 2,
		DineInOrders:   3,
		TakeoutOrders:  3,
		CategoryStats:  models.CategorySales{Rice: 6, Cafe: 8},
		TopProducts:    []models.TopProduct{{Name: "Cafe Latte Tall", Quantity: 8}},
		HourlyStats:    map[int]int{9: 1},
		LastUpdated:    time.Now(),
	}

	mock.ExpectQuery(`INSERT INTO daily_stats`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	err = repo.Save(db, stats)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
