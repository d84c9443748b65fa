package service

import (
	"context"

	"foodcart/order-svc/internal/domain"
	"foodcart/order-svc/internal/storage"
)

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id int) (int64, error)
}

type ProductRepository interface {
	CreateCategory(category *domain.ProductCategory) error
	ListCategories() ([]domain.ProductCategory, error)
	CreateProduct(product *domain.Product) error
	ListProducts(filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	ProductPrices(ids []int) (map[int]float64, error)
}

type MenuRepository interface {
	UpsertMenuItem(item *domain.MenuItem) error
	ListMenu(restaurantID int) ([]domain.MenuItem, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders(status domain.OrderStatus) ([]domain.Order, error)
	UpdateOrder(order *domain.Order) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, rest *domain.Restaurant) error
	List() ([]domain.Restaurant, error)
	Get(id int) (*domain.Restaurant, error)
	Update(ctx context.Context, rest *domain.Restaurant) error
	Delete(id int) error
}

type ProductServiceInterface interface {
	CreateCategory(category *domain.ProductCategory) error
	ListCategories() ([]domain.ProductCategory, error)
	Create(product *domain.Product) error
	List(filter domain.ProductFilter) ([]domain.Product, error)
	Get(id int) (*domain.Product, error)
	Update(product *domain.Product) error
}

type MenuServiceInterface interface {
	SetAvailability(restaurantID, productID int, available bool) (*domain.MenuItem, error)
	List(restaurantID int) ([]domain.MenuItem, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(id int) (*domain.Order, error)
	List(status domain.OrderStatus) ([]domain.Order, error)
	Update(id int, upd domain.OrderUpdate) (*domain.Order, error)
	QRCode(id int) ([]byte, error)
}

var (
	_ RestaurantRepository = (*storage.PostgresRepository)(nil)
	_ ProductRepository    = (*storage.PostgresRepository)(nil)
	_ MenuRepository       = (*storage.PostgresRepository)(nil)
	_ OrderRepository      = (*storage.PostgresRepository)(nil)
	_ EventPublisher       = (*storage.KafkaPublisher)(nil)
)
