package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySales_Add(t *testing.T) {
	var sales CategorySales

	sales.Add(CategoryRice, 3)
	sales.Add(CategoryRice, 2)
	sales.Add(CategoryFrappe, 1)
	sales.Add("Dessert", 7) // unknown bucket is ignored

	assert.Equal(t, 5, sales.Rice)
	assert.Equal(t, 1, sales.Frappe)
	assert.Equal(t, CategorySales{Rice: 5, Frappe: 1}, sales)
}

func TestDailyStats_JSONRoundTrip(t *testing.T) {
	original := DailyStats{
		ID:             7,
		StatDate:       time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		TotalOrders:    6,
		OrdersToday:    1,
		ItemsSold:      14,
		ItemsSoldToday: 2,
		DineInOrders:   3,
		TakeoutOrders:  3,
		CategoryStats:  CategorySales{Rice: 6, Cafe: 8},
		TopProducts:    []TopProduct{{Name: "Cafe Latte Tall", Quantity: 8}},
		HourlyStats:    map[int]int{9: 1, 18: 3},
		LastUpdated:    time.Date(2024, 5, 12, 9, 15, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded DailyStats
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
	// Integer map keys survive the string form JSON forces on them.
	assert.Equal(t, 3, decoded.HourlyStats[18])
}

func TestDashboardStats_JSONKeys(t *testing.T) {
	dash := DashboardStats{
		TotalOrders:    20,
		TotalProducts:  2,
		TotalStocks:    55,
		OrdersToday:    4,
		ItemsSoldToday: 9,
		DineInToday:    12,
		TakeoutToday:   8,
		TopProducts:    []TopProduct{},
		HourlyStats:    map[int]int{},
	}

	data, err := json.Marshal(dash)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, key := range []string{
		"totalOrders", "totalProducts", "totalStocks", "ordersToday",
		"itemsSoldToday", "dineInToday", "takeoutToday",
		"categoryStats", "hourlyStats", "topProducts",
	} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "55", string(fields["totalStocks"]))
	assert.Equal(t, "[]", string(fields["topProducts"]))
}
