package mocks

import (
	"foodcart/manager-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) NewOrders() ([]domain.Order, error) {
	ret := _m.Called()
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

// MenuRepository is a mock type for the MenuRepository type
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) MenuItems() ([]domain.MenuItem, error) {
	ret := _m.Called()
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

// CatalogRepository is a mock type for the CatalogRepository type
type CatalogRepository struct {
	mock.Mock
}

func (_m *CatalogRepository) Restaurants() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) Products() ([]domain.Product, error) {
	ret := _m.Called()
	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

// StaffRepository is a mock type for the StaffRepository type
type StaffRepository struct {
	mock.Mock
}

func (_m *StaffRepository) StaffUserByUsername(username string) (*domain.StaffUser, error) {
	ret := _m.Called(username)
	var r0 *domain.StaffUser
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.StaffUser)
	}
	return r0, ret.Error(1)
}

func (_m *StaffRepository) CreateStaffUser(user *domain.StaffUser) error {
	ret := _m.Called(user)
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

// NewMenuRepository creates a new instance of MenuRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// NewCatalogRepository creates a new instance of CatalogRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// NewStaffRepository creates a new instance of StaffRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStaffRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *StaffRepository {
	m := &StaffRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
