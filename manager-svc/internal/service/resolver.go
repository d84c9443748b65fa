package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"foodcart/manager-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

var ErrEmptyAddress = errors.New("address is empty")

// ResolutionError means an address could not be turned into coordinates.
type ResolutionError struct {
	Address string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve coordinates of %q: %v", e.Address, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NormalizeAddress drops every whitespace rune.
func NormalizeAddress(address string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, address)
}

type CoordinateResolver struct {
	provider CoordinateProvider
	cache    CoordinateCache
	log      logrus.FieldLogger
}

func NewCoordinateResolver(provider CoordinateProvider, cache CoordinateCache, log logrus.FieldLogger) *CoordinateResolver {
	return &CoordinateResolver{provider: provider, cache: cache, log: log}
}

// Resolve returns cached coordinates when present and asks the provider
// otherwise. Concurrent misses for one address may both reach the provider.
func (r *CoordinateResolver) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	key := NormalizeAddress(address)
	if key == "" {
		return domain.Coordinates{}, &ResolutionError{Address: address, Err: ErrEmptyAddress}
	}

	coords, found, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.WithField("address", address).Warnf("coordinate cache read failed: %v", err)
	} else if found {
		return coords, nil
	}

	coords, err = r.provider.Fetch(ctx, address)
	if err != nil {
		return domain.Coordinates{}, &ResolutionError{Address: address, Err: err}
	}

	if err := r.cache.Put(ctx, key, coords); err != nil {
		r.log.WithField("address", address).Warnf("coordinate cache write failed: %v", err)
	}
	return coords, nil
}

var _ Resolver = (*CoordinateResolver)(nil)
