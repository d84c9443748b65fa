package tests

import (
	"context"
	"errors"
	"testing"

	"foodcart/manager-svc/internal/domain"
	"foodcart/manager-svc/internal/geocoder"
	"foodcart/manager-svc/internal/mocks"
	"foodcart/manager-svc/internal/service"
	"foodcart/manager-svc/internal/storage"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Moscow, Red Square 1", want: "Moscow,RedSquare1"},
		{in: "Moscow,RedSquare1", want: "Moscow,RedSquare1"},
		{in: " Tula\tLenina\n5 ", want: "TulaLenina5"},
		{in: "   ", want: ""},
	}
	for _, testCase := range tests {
		t.Run(testCase.in, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.NormalizeAddress(testCase.in))
		})
	}
}

func TestCoordinateResolver_CachesResult(t *testing.T) {
	provider := newFakeProvider(map[string]domain.Coordinates{
		"Moscow, Red Square 1": {Lon: 37.62, Lat: 55.75},
	})
	logger, _ := logtest.NewNullLogger()
	resolver := service.NewCoordinateResolver(provider, storage.NewMemoryCoordinateCache(), logger)

	first, err := resolver.Resolve(context.Background(), "Moscow, Red Square 1")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "Moscow, Red Square 1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.Coordinates{Lon: 37.62, Lat: 55.75}, second)
	assert.Equal(t, 1, provider.total())
}

func TestCoordinateResolver_WhitespaceVariantsShareEntry(t *testing.T) {
	provider := newFakeProvider(map[string]domain.Coordinates{
		"Moscow, Red Square 1": {Lon: 37.62, Lat: 55.75},
	})
	cache := storage.NewMemoryCoordinateCache()
	logger, _ := logtest.NewNullLogger()
	resolver := service.NewCoordinateResolver(provider, cache, logger)

	_, err := resolver.Resolve(context.Background(), "Moscow, Red Square 1")
	require.NoError(t, err)
	got, err := resolver.Resolve(context.Background(), "Moscow,  Red Square  1")
	require.NoError(t, err)

	assert.Equal(t, domain.Coordinates{Lon: 37.62, Lat: 55.75}, got)
	assert.Equal(t, 1, provider.total())
	assert.Equal(t, 1, cache.Len())
}

func TestCoordinateResolver_Errors(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		wantErr  error
		wantCall bool
	}{
		{name: "empty address", address: "", wantErr: service.ErrEmptyAddress},
		{name: "blank address", address: " \t ", wantErr: service.ErrEmptyAddress},
		{name: "no results", address: "Nowhere", wantErr: geocoder.ErrNoResults, wantCall: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			provider := newFakeProvider(map[string]domain.Coordinates{})
			cache := storage.NewMemoryCoordinateCache()
			logger, _ := logtest.NewNullLogger()
			resolver := service.NewCoordinateResolver(provider, cache, logger)

			_, err := resolver.Resolve(context.Background(), testCase.address)

			var resErr *service.ResolutionError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, testCase.address, resErr.Address)
			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Equal(t, testCase.wantCall, provider.total() > 0)
			assert.Zero(t, cache.Len())
		})
	}
}

func TestCoordinateResolver_CacheFailures(t *testing.T) {
	coords := domain.Coordinates{Lon: 30.31, Lat: 59.94}

	t.Run("read failure falls back to provider", func(t *testing.T) {
		cache := mocks.NewCoordinateCache(t)
		provider := mocks.NewCoordinateProvider(t)
		logger, hook := logtest.NewNullLogger()

		cache.On("Get", mock.Anything, "SaintPetersburg").Return(domain.Coordinates{}, false, errors.New("redis down")).Once()
		provider.On("Fetch", mock.Anything, "Saint Petersburg").Return(coords, nil).Once()
		cache.On("Put", mock.Anything, "SaintPetersburg", coords).Return(nil).Once()

		got, err := service.NewCoordinateResolver(provider, cache, logger).Resolve(context.Background(), "Saint Petersburg")
		require.NoError(t, err)
		assert.Equal(t, coords, got)
		assert.Len(t, hook.Entries, 1)
	})

	t.Run("write failure still returns coordinates", func(t *testing.T) {
		cache := mocks.NewCoordinateCache(t)
		provider := mocks.NewCoordinateProvider(t)
		logger, hook := logtest.NewNullLogger()

		cache.On("Get", mock.Anything, "SaintPetersburg").Return(domain.Coordinates{}, false, nil).Once()
		provider.On("Fetch", mock.Anything, "Saint Petersburg").Return(coords, nil).Once()
		cache.On("Put", mock.Anything, "SaintPetersburg", coords).Return(errors.New("redis down")).Once()

		got, err := service.NewCoordinateResolver(provider, cache, logger).Resolve(context.Background(), "Saint Petersburg")
		require.NoError(t, err)
		assert.Equal(t, coords, got)
		assert.Len(t, hook.Entries, 1)
	})

	t.Run("hit skips provider", func(t *testing.T) {
		cache := mocks.NewCoordinateCache(t)
		provider := mocks.NewCoordinateProvider(t)
		logger, _ := logtest.NewNullLogger()

		cache.On("Get", mock.Anything, "SaintPetersburg").Return(coords, true, nil).Once()

		got, err := service.NewCoordinateResolver(provider, cache, logger).Resolve(context.Background(), "Saint Petersburg")
		require.NoError(t, err)
		assert.Equal(t, coords, got)
	})
}
