package tests

import (
	"context"
	"testing"

	"foodcart/manager-svc/internal/domain"
	"foodcart/manager-svc/internal/mocks"
	"foodcart/manager-svc/internal/service"
	"foodcart/manager-svc/internal/storage"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerService_OrderCandidates(t *testing.T) {
	restA := domain.Restaurant{ID: 1, Name: "A", Address: "A street 1"}
	restB := domain.Restaurant{ID: 2, Name: "B", Address: "B street 2"}

	orders := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuRepository(t)
	menu.On("MenuItems").Return([]domain.MenuItem{
		menuItem(restA, pizza, true),
		menuItem(restA, cola, true),
		menuItem(restB, pizza, true),
	}, nil).Once()
	pizzaOrder := orderWith(1, "Customer", pizza)
	pizzaOrder.Items[0].Cost = 450
	pizzaOrder.Items[0].Quantity = 2
	orders.On("NewOrders").Return([]domain.Order{pizzaOrder, orderWith(2, "Nowhere", pizza)}, nil).Once()

	provider := newFakeProvider(map[string]domain.Coordinates{
		"Customer":   {Lon: 37.60, Lat: 55.75},
		"A street 1": {Lon: 37.70, Lat: 55.75},
		"B street 2": {Lon: 37.61, Lat: 55.75},
	})
	logger, _ := logtest.NewNullLogger()
	engine := service.NewEngine(service.NewCoordinateResolver(provider, storage.NewMemoryCoordinateCache(), logger))
	svc := service.NewManagerService(orders, menu, nil, engine, logger)

	rows, err := svc.OrderCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 900.0, rows[0].Order.TotalCost)
	require.Len(t, rows[0].Candidates, 2)
	assert.Equal(t, "B", rows[0].Candidates[0].Restaurant.Name)
	assert.NotEmpty(t, rows[1].Error)
}

func TestManagerService_OrderCandidates_RepositoryError(t *testing.T) {
	menu := mocks.NewMenuRepository(t)
	menu.On("MenuItems").Return(nil, assert.AnError).Once()
	logger, _ := logtest.NewNullLogger()

	svc := service.NewManagerService(mocks.NewOrderRepository(t), menu, nil, service.NewEngine(nil), logger)
	_, err := svc.OrderCandidates(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestManagerService_ProductMatrix(t *testing.T) {
	restA := domain.Restaurant{ID: 1, Name: "Alpha"}
	restB := domain.Restaurant{ID: 2, Name: "Beta"}

	catalog := mocks.NewCatalogRepository(t)
	menu := mocks.NewMenuRepository(t)
	catalog.On("Restaurants").Return([]domain.Restaurant{restA, restB}, nil).Once()
	catalog.On("Products").Return([]domain.Product{{ID: pizza, Name: "Pizza"}, {ID: cola, Name: "Cola"}, {ID: 3, Name: "Soup"}}, nil).Once()
	menu.On("MenuItems").Return([]domain.MenuItem{
		menuItem(restA, pizza, true),
		menuItem(restA, cola, false),
		menuItem(restB, cola, true),
	}, nil).Once()

	logger, _ := logtest.NewNullLogger()
	matrix, err := service.NewManagerService(nil, menu, catalog, nil, logger).ProductMatrix()
	require.NoError(t, err)

	assert.Equal(t, []domain.Restaurant{restA, restB}, matrix.Restaurants)
	require.Len(t, matrix.Products, 3)
	assert.Equal(t, []bool{true, false}, matrix.Products[0].Availability)
	assert.Equal(t, []bool{false, true}, matrix.Products[1].Availability)
	assert.Equal(t, []bool{false, false}, matrix.Products[2].Availability)
}
