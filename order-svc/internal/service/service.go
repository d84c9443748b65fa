package service

import (
	"context"
	"strings"
	"time"

	"foodcart/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type RestaurantService struct {
	repo      RestaurantRepository
	publisher EventPublisher
	log       logrus.FieldLogger
}

func NewRestaurantService(repo RestaurantRepository, publisher EventPublisher, log logrus.FieldLogger) *RestaurantService {
	return &RestaurantService{repo: repo, publisher: publisher, log: log}
}

func validateRestaurant(rest *domain.Restaurant) error {
	verr := &ValidationError{}
	rest.Name = strings.TrimSpace(rest.Name)
	rest.Address = strings.TrimSpace(rest.Address)
	if rest.Name == "" {
		verr.add("name", "this field may not be blank")
	}
	if tooLong(rest.Name, 50) {
		verr.add("name", "ensure this field has no more than 50 characters")
	}
	if tooLong(rest.Address, 100) {
		verr.add("address", "ensure this field has no more than 100 characters")
	}
	return verr.orNil()
}

func (s *RestaurantService) Create(ctx context.Context, rest *domain.Restaurant) error {
	if err := validateRestaurant(rest); err != nil {
		return err
	}
	if err := s.repo.CreateRestaurant(rest); err != nil {
		return err
	}
	s.announce(ctx, rest)
	return nil
}

func (s *RestaurantService) List() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *RestaurantService) Get(id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *RestaurantService) Update(ctx context.Context, rest *domain.Restaurant) error {
	if err := validateRestaurant(rest); err != nil {
		return err
	}
	if err := s.repo.UpdateRestaurant(rest); err != nil {
		return err
	}
	s.announce(ctx, rest)
	return nil
}

func (s *RestaurantService) Delete(id int) error {
	rows, err := s.repo.DeleteRestaurant(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

// announce lets consumers geocode the restaurant address ahead of the
// manager view. A failed publish does not fail the write.
func (s *RestaurantService) announce(ctx context.Context, rest *domain.Restaurant) {
	if s.publisher == nil || rest.Address == "" {
		return
	}
	err := s.publisher.Publish(ctx, domain.Event{
		Type:         domain.EventRestaurantSaved,
		RestaurantID: rest.ID,
		Address:      rest.Address,
		Timestamp:    time.Now(),
	})
	if err != nil {
		s.log.WithField("restaurant_id", rest.ID).Warnf("failed to publish restaurant event: %v", err)
	}
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) CreateCategory(category *domain.ProductCategory) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return &ValidationError{Fields: map[string]string{"name": "this field may not be blank"}}
	}
	return s.repo.CreateCategory(category)
}

func (s *ProductService) ListCategories() ([]domain.ProductCategory, error) {
	return s.repo.ListCategories()
}

func validateProduct(product *domain.Product) error {
	verr := &ValidationError{}
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		verr.add("name", "this field may not be blank")
	}
	if tooLong(product.Name, 50) {
		verr.add("name", "ensure this field has no more than 50 characters")
	}
	if product.Price < 0 {
		verr.add("price", "ensure this value is greater than or equal to 0")
	}
	if tooLong(product.Description, 200) {
		verr.add("description", "ensure this field has no more than 200 characters")
	}
	return verr.orNil()
}

func (s *ProductService) Create(product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.repo.CreateProduct(product)
}

func (s *ProductService) List(filter domain.ProductFilter) ([]domain.Product, error) {
	return s.repo.ListProducts(filter)
}

func (s *ProductService) Get(id int) (*domain.Product, error) {
	return s.repo.GetProduct(id)
}

// Update changes the catalog price only; order items keep the cost they
// were created with.
func (s *ProductService) Update(product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.repo.UpdateProduct(product)
}

var _ ProductServiceInterface = (*ProductService)(nil)

type MenuService struct {
	menu        MenuRepository
	restaurants RestaurantRepository
	products    ProductRepository
}

func NewMenuService(menu MenuRepository, restaurants RestaurantRepository, products ProductRepository) *MenuService {
	return &MenuService{menu: menu, restaurants: restaurants, products: products}
}

func (s *MenuService) SetAvailability(restaurantID, productID int, available bool) (*domain.MenuItem, error) {
	if _, err := s.restaurants.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}
	product, err := s.products.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		RestaurantID: restaurantID,
		ProductID:    productID,
		ProductName:  product.Name,
		Availability: available,
	}
	if err := s.menu.UpsertMenuItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) List(restaurantID int) ([]domain.MenuItem, error) {
	if _, err := s.restaurants.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}
	return s.menu.ListMenu(restaurantID)
}

var _ MenuServiceInterface = (*MenuService)(nil)
