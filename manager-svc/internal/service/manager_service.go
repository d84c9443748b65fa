package service

import (
	"context"
	"fmt"
	"math"

	"foodcart/manager-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type ManagerService struct {
	orders  OrderRepository
	menu    MenuRepository
	catalog CatalogRepository
	engine  *Engine
	log     logrus.FieldLogger
}

func NewManagerService(
	orders OrderRepository,
	menu MenuRepository,
	catalog CatalogRepository,
	engine *Engine,
	log logrus.FieldLogger,
) *ManagerService {
	return &ManagerService{
		orders:  orders,
		menu:    menu,
		catalog: catalog,
		engine:  engine,
		log:     log,
	}
}

// OrderCandidates builds the manager view for every order that is still new.
func (s *ManagerService) OrderCandidates(ctx context.Context) ([]domain.OrderCandidates, error) {
	items, err := s.menu.MenuItems()
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	orders, err := s.orders.NewOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	for i := range orders {
		orders[i].TotalCost = totalCost(orders[i].Items)
	}

	result := s.engine.Rank(ctx, orders, BuildAvailabilityIndex(items))

	failed := 0
	for _, row := range result {
		if row.Error != "" {
			failed++
			s.log.WithField("order_id", row.Order.ID).Warn(row.Error)
		}
	}
	s.log.WithFields(logrus.Fields{
		"orders": len(result),
		"failed": failed,
	}).Debug("manager view computed")
	return result, nil
}

// ProductMatrix reports, for each product, whether each restaurant currently
// offers it. Missing menu items count as unavailable.
func (s *ManagerService) ProductMatrix() (*domain.ProductMatrix, error) {
	restaurants, err := s.catalog.Restaurants()
	if err != nil {
		return nil, err
	}
	products, err := s.catalog.Products()
	if err != nil {
		return nil, err
	}
	items, err := s.menu.MenuItems()
	if err != nil {
		return nil, err
	}

	type pair struct{ restaurant, product int }
	available := make(map[pair]bool, len(items))
	for _, item := range items {
		available[pair{item.Restaurant.ID, item.ProductID}] = item.Availability
	}

	matrix := &domain.ProductMatrix{
		Restaurants: restaurants,
		Products:    make([]domain.ProductAvailability, 0, len(products)),
	}
	for _, product := range products {
		row := domain.ProductAvailability{
			Product:      product,
			Availability: make([]bool, len(restaurants)),
		}
		for i, rest := range restaurants {
			row.Availability[i] = available[pair{rest.ID, product.ID}]
		}
		matrix.Products = append(matrix.Products, row)
	}
	return matrix, nil
}

func (s *ManagerService) Restaurants() ([]domain.Restaurant, error) {
	return s.catalog.Restaurants()
}

func totalCost(items []domain.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

var _ ManagerServiceInterface = (*ManagerService)(nil)
