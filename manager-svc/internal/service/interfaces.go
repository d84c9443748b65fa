package service

import (
	"context"

	"foodcart/manager-svc/internal/domain"
	"foodcart/manager-svc/internal/geocoder"
	"foodcart/manager-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type OrderRepository interface {
	NewOrders() ([]domain.Order, error)
}

type MenuRepository interface {
	MenuItems() ([]domain.MenuItem, error)
}

type CatalogRepository interface {
	Restaurants() ([]domain.Restaurant, error)
	Products() ([]domain.Product, error)
}

type StaffRepository interface {
	StaffUserByUsername(username string) (*domain.StaffUser, error)
	CreateStaffUser(user *domain.StaffUser) error
}

// CoordinateCache stores resolved coordinates under a normalized address.
// Entries never expire.
type CoordinateCache interface {
	Get(ctx context.Context, key string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, key string, coords domain.Coordinates) error
}

type CoordinateProvider interface {
	Fetch(ctx context.Context, address string) (domain.Coordinates, error)
}

type Resolver interface {
	Resolve(ctx context.Context, address string) (domain.Coordinates, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ManagerServiceInterface interface {
	OrderCandidates(ctx context.Context) ([]domain.OrderCandidates, error)
	ProductMatrix() (*domain.ProductMatrix, error)
	Restaurants() ([]domain.Restaurant, error)
}

type AuthServiceInterface interface {
	Login(username, password string) (string, error)
	ParseToken(token string) (*Claims, error)
}

var (
	_ OrderRepository    = (*storage.PostgresRepository)(nil)
	_ MenuRepository     = (*storage.PostgresRepository)(nil)
	_ CatalogRepository  = (*storage.PostgresRepository)(nil)
	_ StaffRepository    = (*storage.PostgresRepository)(nil)
	_ CoordinateCache    = (*storage.RedisCoordinateCache)(nil)
	_ CoordinateCache    = (*storage.MemoryCoordinateCache)(nil)
	_ CoordinateProvider = (*geocoder.Client)(nil)
	_ MessageReader      = (*kafka.Reader)(nil)
)
