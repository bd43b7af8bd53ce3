package services

import (
	"math"
	"pickup-route-service/internal/domain"
	"slices"
)

// Build a depot-to-depot route using a greedy nearest-neighbor algorithm.
//
// The next stop is always the remaining one closest (squared distance) to the
// last placed stop; ties keep the earliest stop in the remaining pool.
// It does not attempt global route optimization (no 2-opt).
func NearestNeighborRoute(chosen []domain.Stop, depot domain.Coordinate) domain.Route {
	stops := make([]domain.Stop, 0, len(chosen)+2)
	stops = append(stops, domain.NewDepotStop(depot))

	remaining := slices.Clone(chosen)
	current := depot

	for len(remaining) > 0 {
		bestIdx := -1
		bestDistance := math.MaxInt

		for i, s := range remaining {
			// Strict comparison keeps the first minimum.
			if d := domain.SquaredDistance(current, s.Location); d < bestDistance {
				bestDistance = d
				bestIdx = i
			}
		}

		next := remaining[bestIdx]
		stops = append(stops, next)
		current = next.Location
		remaining = slices.Delete(remaining, bestIdx, bestIdx+1)
	}

	stops = append(stops, domain.NewDepotStop(depot))
	return domain.Route{Stops: stops}
}
