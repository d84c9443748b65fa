package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"foodcart/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

var ErrQRUnavailable = errors.New("qr code generator is not configured")

var phoneDigits = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

type OrderService struct {
	orders      OrderRepository
	products    ProductRepository
	restaurants RestaurantRepository
	publisher   EventPublisher
	qrEncoder   QRGenerator
	log         logrus.FieldLogger
}

func NewOrderService(
	orders OrderRepository,
	products ProductRepository,
	restaurants RestaurantRepository,
	publisher EventPublisher,
	qr QRGenerator,
	log logrus.FieldLogger,
) *OrderService {
	return &OrderService{
		orders:      orders,
		products:    products,
		restaurants: restaurants,
		publisher:   publisher,
		qrEncoder:   qr,
		log:         log,
	}
}

func normalizePhone(raw string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(raw))
}

func validateIntake(order *domain.Order) *ValidationError {
	verr := &ValidationError{}

	order.Address = strings.TrimSpace(order.Address)
	order.FirstName = strings.TrimSpace(order.FirstName)
	order.LastName = strings.TrimSpace(order.LastName)

	if order.Address == "" {
		verr.add("address", "this field may not be blank")
	} else if tooLong(order.Address, 100) {
		verr.add("address", "ensure this field has no more than 100 characters")
	}
	if order.FirstName == "" {
		verr.add("firstname", "this field may not be blank")
	} else if tooLong(order.FirstName, 50) {
		verr.add("firstname", "ensure this field has no more than 50 characters")
	}
	if tooLong(order.LastName, 50) {
		verr.add("lastname", "ensure this field has no more than 50 characters")
	}
	if strings.TrimSpace(order.PhoneNumber) == "" {
		verr.add("phonenumber", "this field may not be blank")
	} else if phone := normalizePhone(order.PhoneNumber); !phoneDigits.MatchString(phone) {
		verr.add("phonenumber", "enter a valid phone number")
	} else {
		order.PhoneNumber = phone
	}

	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentCash
	} else if !order.PaymentMethod.Valid() {
		verr.add("payment_method", fmt.Sprintf("%q is not a valid choice", order.PaymentMethod))
	}

	if len(order.Items) == 0 {
		verr.add("products", "this list may not be empty")
	}
	for _, item := range order.Items {
		if item.ProductID <= 0 {
			verr.add("products", "product is required for every item")
		}
		if item.Quantity < 1 {
			verr.add("products", "quantity must be at least 1")
		}
	}
	return verr
}

// Create validates the intake payload, snapshots product prices into item
// costs and stores the order with its items in one transaction.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	verr := validateIntake(order)
	if err := verr.orNil(); err != nil {
		return err
	}

	ids := make([]int, 0, len(order.Items))
	seen := make(map[int]struct{}, len(order.Items))
	for _, item := range order.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	prices, err := s.products.ProductPrices(ids)
	if err != nil {
		return fmt.Errorf("failed to load product prices: %w", err)
	}
	for _, id := range ids {
		if _, ok := prices[id]; !ok {
			verr.add("products", fmt.Sprintf("invalid product id %d: %v", id, domain.ErrProductNotFound))
		}
	}
	if err := verr.orNil(); err != nil {
		return err
	}

	for i := range order.Items {
		order.Items[i].Cost = prices[order.Items[i].ProductID]
	}
	order.Status = domain.StatusNew
	order.RestaurantID = nil
	order.CalledAt = nil
	order.DeliveredAt = nil
	order.TotalCost = totalCost(order.Items)

	if err := s.orders.CreateOrder(order); err != nil {
		// a product removed after the price lookup trips the item foreign key
		if errors.Is(err, domain.ErrProductNotFound) {
			verr.add("products", err.Error())
			return verr
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, domain.Event{
			Type:      domain.EventOrderCreated,
			OrderID:   order.ID,
			Address:   order.Address,
			Timestamp: time.Now(),
		})
		if err != nil {
			s.log.WithField("order_id", order.ID).Warnf("failed to publish order event: %v", err)
		}
	}

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"items":    len(order.Items),
	}).Info("order registered")
	return nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return nil, err
	}
	order.TotalCost = totalCost(order.Items)
	return order, nil
}

func (s *OrderService) List(status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"status": fmt.Sprintf("%q is not a valid choice", status)}}
	}
	orders, err := s.orders.ListOrders(status)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].TotalCost = totalCost(orders[i].Items)
	}
	return orders, nil
}

// Update applies manager edits. Status is a plain value here: any member of
// the enum is accepted, transitions are not guarded.
func (s *OrderService) Update(id int, upd domain.OrderUpdate) (*domain.Order, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return nil, err
	}

	verr := &ValidationError{}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			verr.add("status", fmt.Sprintf("%q is not a valid choice", *upd.Status))
		} else {
			order.Status = *upd.Status
		}
	}
	if upd.PaymentMethod != nil {
		if !upd.PaymentMethod.Valid() {
			verr.add("payment_method", fmt.Sprintf("%q is not a valid choice", *upd.PaymentMethod))
		} else {
			order.PaymentMethod = *upd.PaymentMethod
		}
	}
	if upd.Comment != nil {
		order.Comment = *upd.Comment
	}
	if upd.CalledAt != nil {
		order.CalledAt = upd.CalledAt
	}
	if upd.DeliveredAt != nil {
		order.DeliveredAt = upd.DeliveredAt
	}
	if upd.RestaurantID != nil {
		if _, err := s.restaurants.GetRestaurant(*upd.RestaurantID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				verr.add("restaurant_id", fmt.Sprintf("invalid restaurant id %d", *upd.RestaurantID))
			} else {
				return nil, err
			}
		} else {
			order.RestaurantID = upd.RestaurantID
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	if err := s.orders.UpdateOrder(order); err != nil {
		return nil, err
	}
	order.TotalCost = totalCost(order.Items)
	return order, nil
}

func (s *OrderService) QRCode(id int) ([]byte, error) {
	if _, err := s.orders.GetOrder(id); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, ErrQRUnavailable
	}
	return s.qrEncoder.Generate(id)
}

func totalCost(items []domain.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

var _ OrderServiceInterface = (*OrderService)(nil)
