package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"foodcart/manager-svc/internal/domain"

	"github.com/jftuga/geodist"
)

type Engine struct {
	resolver Resolver
}

func NewEngine(resolver Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// Rank computes the candidate restaurants of every order. A failure is
// recorded on the order it happened in and the next order is processed.
func (e *Engine) Rank(ctx context.Context, orders []domain.Order, index *AvailabilityIndex) []domain.OrderCandidates {
	result := make([]domain.OrderCandidates, 0, len(orders))
	for _, order := range orders {
		entry := domain.OrderCandidates{Order: order, Candidates: []domain.Candidate{}}
		candidates, err := e.rankOrder(ctx, order, index)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Candidates = candidates
		}
		result = append(result, entry)
	}
	return result
}

func (e *Engine) rankOrder(ctx context.Context, order domain.Order, index *AvailabilityIndex) ([]domain.Candidate, error) {
	origin, err := e.resolver.Resolve(ctx, order.Address)
	if err != nil {
		return nil, err
	}

	required := RequiredProducts(order)
	candidates := []domain.Candidate{}
	for _, rest := range index.Restaurants() {
		if !index.CanFulfill(rest.ID, required) {
			continue
		}
		coords, err := e.resolver.Resolve(ctx, rest.Address)
		if err != nil {
			return nil, fmt.Errorf("restaurant %d: %w", rest.ID, err)
		}
		candidates = append(candidates, domain.Candidate{
			Restaurant: rest,
			DistanceKm: DistanceKm(origin, coords),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})
	return candidates, nil
}

// DistanceKm is the geodesic distance rounded to metres. Vincenty may fail to
// converge for nearly antipodal points; haversine is used then.
func DistanceKm(a, b domain.Coordinates) float64 {
	p := geodist.Coord{Lat: a.Lat, Lon: a.Lon}
	q := geodist.Coord{Lat: b.Lat, Lon: b.Lon}

	_, km, err := geodist.VincentyDistance(p, q)
	if err != nil {
		_, km = geodist.HaversineDistance(p, q)
	}
	return math.Round(km*1000) / 1000
}
