package service

import "foodcart/manager-svc/internal/domain"

// AvailabilityIndex maps restaurants to the products they can cook right now.
// Restaurants keep the order in which they first appeared in the menu items.
type AvailabilityIndex struct {
	restaurants []domain.Restaurant
	products    map[int]map[int]struct{}
}

func BuildAvailabilityIndex(items []domain.MenuItem) *AvailabilityIndex {
	index := &AvailabilityIndex{products: make(map[int]map[int]struct{})}
	for _, item := range items {
		if !item.Availability {
			continue
		}
		set, ok := index.products[item.Restaurant.ID]
		if !ok {
			set = make(map[int]struct{})
			index.products[item.Restaurant.ID] = set
			index.restaurants = append(index.restaurants, item.Restaurant)
		}
		set[item.ProductID] = struct{}{}
	}
	return index
}

func (ix *AvailabilityIndex) Restaurants() []domain.Restaurant {
	out := make([]domain.Restaurant, len(ix.restaurants))
	copy(out, ix.restaurants)
	return out
}

func (ix *AvailabilityIndex) Products(restaurantID int) map[int]struct{} {
	out := make(map[int]struct{}, len(ix.products[restaurantID]))
	for id := range ix.products[restaurantID] {
		out[id] = struct{}{}
	}
	return out
}

// CanFulfill reports whether every required product is available at the
// restaurant. An empty requirement is satisfied by any indexed restaurant.
func (ix *AvailabilityIndex) CanFulfill(restaurantID int, required map[int]struct{}) bool {
	available, ok := ix.products[restaurantID]
	if !ok {
		return false
	}
	for id := range required {
		if _, ok := available[id]; !ok {
			return false
		}
	}
	return true
}

func RequiredProducts(order domain.Order) map[int]struct{} {
	required := make(map[int]struct{}, len(order.Items))
	for _, item := range order.Items {
		required[item.ProductID] = struct{}{}
	}
	return required
}
