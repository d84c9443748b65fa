package mocks

import (
	"foodcart/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuRepository is a mock type for the MenuRepository type
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) UpsertMenuItem(item *domain.MenuItem) error {
	ret := _m.Called(item)
	if rf, ok := ret.Get(0).(func(*domain.MenuItem) error); ok {
		return rf(item)
	}
	return ret.Error(0)
}

func (_m *MenuRepository) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	ret := _m.Called(restaurantID)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
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
