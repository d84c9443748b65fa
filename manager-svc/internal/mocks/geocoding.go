package mocks

import (
	"context"

	"foodcart/manager-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// CoordinateCache is a mock type for the CoordinateCache type
type CoordinateCache struct {
	mock.Mock
}

func (_m *CoordinateCache) Get(ctx context.Context, key string) (domain.Coordinates, bool, error) {
	ret := _m.Called(ctx, key)
	return ret.Get(0).(domain.Coordinates), ret.Bool(1), ret.Error(2)
}

func (_m *CoordinateCache) Put(ctx context.Context, key string, coords domain.Coordinates) error {
	ret := _m.Called(ctx, key, coords)
	return ret.Error(0)
}

// CoordinateProvider is a mock type for the CoordinateProvider type
type CoordinateProvider struct {
	mock.Mock
}

func (_m *CoordinateProvider) Fetch(ctx context.Context, address string) (domain.Coordinates, error) {
	ret := _m.Called(ctx, address)
	return ret.Get(0).(domain.Coordinates), ret.Error(1)
}

// Resolver is a mock type for the Resolver type
type Resolver struct {
	mock.Mock
}

func (_m *Resolver) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	ret := _m.Called(ctx, address)
	return ret.Get(0).(domain.Coordinates), ret.Error(1)
}

// NewCoordinateCache creates a new instance of CoordinateCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCoordinateCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *CoordinateCache {
	m := &CoordinateCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// NewCoordinateProvider creates a new instance of CoordinateProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCoordinateProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *CoordinateProvider {
	m := &CoordinateProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// NewResolver creates a new instance of Resolver. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewResolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *Resolver {
	m := &Resolver{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
