package services

import (
	"errors"
	"testing"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo records created rows in memory. The executor argument is
// ignored; transaction boundaries are asserted through sqlmock instead.
type fakeOrderRepo struct {
	orders     []models.Order
	items      []models.OrderItem
	createErr  error
	nextID     int64
	byID       map[int64]*models.Order
	itemsByOID map[int64][]models.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		byID:       make(map[int64]*models.Order),
		itemsByOID: make(map[int64][]models.OrderItem),
	}
}

func (f *fakeOrderRepo) CreateOrder(_ repositories.SQLExecutor, order *models.Order) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	order.ID = f.nextID
	f.orders = append(f.orders, *order)
	return f.nextID, nil
}

func (f *fakeOrderRepo) CreateOrderItem(_ repositories.SQLExecutor, item *models.OrderItem) (int64, error) {
	f.items = append(f.items, *item)
	return int64(len(f.items)), nil
}

func (f *fakeOrderRepo) GetOrderByID(orderID int64) (*models.Order, error) {
	order, ok := f.byID[orderID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderRepo) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	return f.orders, len(f.orders), nil
}

func (f *fakeOrderRepo) GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error) {
	return f.itemsByOID[orderID], nil
}

// fakeAggregator captures the payloads handed to the stats layer.
type fakeAggregator struct {
	payloads []OrderStatsPayload
	err      error
}

func (f *fakeAggregator) UpdateStats(payload OrderStatsPayload) (*models.DailyStats, error) {
	f.payloads = append(f.payloads, payload)
	if f.err != nil {
		return nil, f.err
	}
	return &models.DailyStats{}, nil
}

func (f *fakeAggregator) GetDashboardStats() (*models.DashboardStats, error) {
	return &models.DashboardStats{}, nil
}

func TestCreateOrder_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeOrderRepo()
	aggregator := &fakeAggregator{}
	svc := NewOrderService(repo, aggregator, db)

	order, err := svc.CreateOrder(CreateOrderRequest{
		CustomerName: "Maria",
		Type:         models.OrderTypeDineIn,
		Items: []CreateOrderItemRequest{
			{Name: "Cafe Latte Tall", Price: 120, Quantity: 2},
			{Name: "Plain Rice", Price: 25},
		},
	})
	require.NoError(t, err)

	// Missing quantity defaults to 1, so 2*120 + 1*25.
	assert.Equal(t, 265.0, order.TotalAmount)
	assert.Equal(t, models.OrderTypeDineIn, order.OrderType)
	require.NotNil(t, order.CustomerName)
	assert.Equal(t, "Maria", *order.CustomerName)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	require.Len(t, aggregator.payloads, 1)
	payload := aggregator.payloads[0]
	assert.Equal(t, models.OrderTypeDineIn, payload.Type)
	require.Len(t, payload.Items, 2)
	assert.Equal(t, StatsLineItem{Name: "Cafe Latte Tall", Quantity: 2}, payload.Items[0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), &fakeAggregator{}, nil)

	order, err := svc.CreateOrder(CreateOrderRequest{Type: models.OrderTypeDineIn})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrder_StatsFailureDoesNotFailOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	aggregator := &fakeAggregator{err: errors.New("stats store unavailable")}
	svc := NewOrderService(newFakeOrderRepo(), aggregator, db)

	order, err := svc.CreateOrder(CreateOrderRequest{
		Type:  models.OrderTypeTakeOut,
		Items: []CreateOrderItemRequest{{Name: "Chicken Adobo", Price: 150, Quantity: 1}},
	})

	// The order save succeeded; the aggregation failure stays internal.
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotZero(t, order.ID)
	assert.Len(t, aggregator.payloads, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_RepoFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := newFakeOrderRepo()
	repo.createErr = repositories.ErrDatabaseError
	aggregator := &fakeAggregator{}
	svc := NewOrderService(repo, aggregator, db)

	order, err := svc.CreateOrder(CreateOrderRequest{
		Type:  models.OrderTypeDineIn,
		Items: []CreateOrderItemRequest{{Name: "Plain Rice", Price: 25, Quantity: 1}},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, repositories.ErrDatabaseError)
	assert.Empty(t, aggregator.payloads)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderByID_NotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), &fakeAggregator{}, nil)

	order, err := svc.GetOrderByID(42)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrderByID_LoadsItems(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.byID[7] = &models.Order{ID: 7, OrderType: models.OrderTypeTakeOut, TotalAmount: 150}
	repo.itemsByOID[7] = []models.OrderItem{{OrderID: 7, Name: "Chicken Adobo", Quantity: 1}}

	svc := NewOrderService(repo, &fakeAggregator{}, nil)
	order, err := svc.GetOrderByID(7)

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Chicken Adobo", order.Items[0].Name)
}
