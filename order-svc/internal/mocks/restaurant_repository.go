package mocks

import (
	"foodcart/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RestaurantRepository is a mock type for the RestaurantRepository type
type RestaurantRepository struct {
	mock.Mock
}

func (_m *RestaurantRepository) CreateRestaurant(rest *domain.Restaurant) error {
	ret := _m.Called(rest)
	if rf, ok := ret.Get(0).(func(*domain.Restaurant) error); ok {
		return rf(rest)
	}
	return ret.Error(0)
}

func (_m *RestaurantRepository) ListRestaurants() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	ret := _m.Called(id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	ret := _m.Called(rest)
	return ret.Error(0)
}

func (_m *RestaurantRepository) DeleteRestaurant(id int) (int64, error) {
	ret := _m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

// NewRestaurantRepository creates a new instance of RestaurantRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
