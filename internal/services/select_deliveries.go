package services

import (
	"cmp"
	"pickup-route-service/internal/domain"
	"slices"
)

// Selection is the capacity-feasible delivery subset picked for one route.
type Selection struct {
	Chosen       []domain.Stop
	UsedCapacity float64
}

// SelectDeliveries picks as many of the smallest deliveries as fit the vehicle.
//
// Candidates are sorted by size with ties kept in input order, then taken as a
// prefix until the next one would overflow capacity. Later, smaller-fitting
// stops are never skipped into: this is greedy-by-size, not bin packing.
func SelectDeliveries(candidates []domain.Stop, capacity float64) Selection {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b domain.Stop) int {
		return cmp.Compare(a.Size, b.Size)
	})

	chosen := make([]domain.Stop, 0, len(sorted))
	total := 0.0
	for _, s := range sorted {
		if total+s.Size > capacity {
			break
		}
		total += s.Size
		chosen = append(chosen, s)
	}

	return Selection{Chosen: chosen, UsedCapacity: total}
}
