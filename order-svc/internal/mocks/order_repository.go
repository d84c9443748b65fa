package mocks

import (
	"foodcart/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(order *domain.Order) error {
	ret := _m.Called(order)
	if rf, ok := ret.Get(0).(func(*domain.Order) error); ok {
		return rf(order)
	}
	return ret.Error(0)
}

func (_m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	ret := _m.Called(id)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListOrders(status domain.OrderStatus) ([]domain.Order, error) {
	ret := _m.Called(status)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrder(order *domain.Order) error {
	ret := _m.Called(order)
	return ret.Error(0)
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
