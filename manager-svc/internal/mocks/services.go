package mocks

import (
	"context"

	"foodcart/manager-svc/internal/domain"
	"foodcart/manager-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

// ManagerServiceInterface is a mock type for the ManagerServiceInterface type
type ManagerServiceInterface struct {
	mock.Mock
}

func (_m *ManagerServiceInterface) OrderCandidates(ctx context.Context) ([]domain.OrderCandidates, error) {
	ret := _m.Called(ctx)
	var r0 []domain.OrderCandidates
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OrderCandidates)
	}
	return r0, ret.Error(1)
}

func (_m *ManagerServiceInterface) ProductMatrix() (*domain.ProductMatrix, error) {
	ret := _m.Called()
	var r0 *domain.ProductMatrix
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.ProductMatrix)
	}
	return r0, ret.Error(1)
}

func (_m *ManagerServiceInterface) Restaurants() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

// AuthServiceInterface is a mock type for the AuthServiceInterface type
type AuthServiceInterface struct {
	mock.Mock
}

func (_m *AuthServiceInterface) Login(username, password string) (string, error) {
	ret := _m.Called(username, password)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthServiceInterface) ParseToken(token string) (*service.Claims, error) {
	ret := _m.Called(token)
	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}
	return r0, ret.Error(1)
}

// NewManagerServiceInterface creates a new instance of ManagerServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewManagerServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ManagerServiceInterface {
	m := &ManagerServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// NewAuthServiceInterface creates a new instance of AuthServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAuthServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
