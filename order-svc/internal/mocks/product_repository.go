package mocks

import (
	"foodcart/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ProductRepository is a mock type for the ProductRepository type
type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) CreateCategory(category *domain.ProductCategory) error {
	ret := _m.Called(category)
	if rf, ok := ret.Get(0).(func(*domain.ProductCategory) error); ok {
		return rf(category)
	}
	return ret.Error(0)
}

func (_m *ProductRepository) ListCategories() ([]domain.ProductCategory, error) {
	ret := _m.Called()
	var r0 []domain.ProductCategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ProductCategory)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) CreateProduct(product *domain.Product) error {
	ret := _m.Called(product)
	if rf, ok := ret.Get(0).(func(*domain.Product) error); ok {
		return rf(product)
	}
	return ret.Error(0)
}

func (_m *ProductRepository) ListProducts(filter domain.ProductFilter) ([]domain.Product, error) {
	ret := _m.Called(filter)
	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProduct(id int) (*domain.Product, error) {
	ret := _m.Called(id)
	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) UpdateProduct(product *domain.Product) error {
	ret := _m.Called(product)
	return ret.Error(0)
}

func (_m *ProductRepository) ProductPrices(ids []int) (map[int]float64, error) {
	ret := _m.Called(ids)
	var r0 map[int]float64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[int]float64)
	}
	return r0, ret.Error(1)
}

// NewProductRepository creates a new instance of ProductRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
