package tests

import (
	"context"
	"sync"

	"foodcart/manager-svc/internal/domain"
	"foodcart/manager-svc/internal/geocoder"
)

// fakeProvider answers from a fixed table and counts calls per address.
type fakeProvider struct {
	mu     sync.Mutex
	coords map[string]domain.Coordinates
	calls  map[string]int
}

func newFakeProvider(coords map[string]domain.Coordinates) *fakeProvider {
	return &fakeProvider{coords: coords, calls: map[string]int{}}
}

func (p *fakeProvider) Fetch(_ context.Context, address string) (domain.Coordinates, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls[address]++
	c, ok := p.coords[address]
	if !ok {
		return domain.Coordinates{}, geocoder.ErrNoResults
	}
	return c, nil
}

func (p *fakeProvider) total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		n += c
	}
	return n
}

func menuItem(rest domain.Restaurant, productID int, available bool) domain.MenuItem {
	return domain.MenuItem{Restaurant: rest, ProductID: productID, Availability: available}
}

func orderWith(id int, address string, productIDs ...int) domain.Order {
	order := domain.Order{ID: id, Address: address, Status: "new"}
	for _, pid := range productIDs {
		order.Items = append(order.Items, domain.OrderItem{ProductID: pid, Quantity: 1})
	}
	return order
}
