package services

import "pickup-route-service/internal/domain"

// SegmentCapacities returns the spare vehicle capacity on every route segment.
//
// The vehicle leaves the depot carrying usedCapacity; each delivery frees its
// size for the segment that follows it, so the values never decrease after the
// first one. usedCapacity must be the total size of the route's deliveries; the
// last segment, driven after every delivery, is recorded as vehicleCapacity
// exactly instead of the float sum, which can drift with fractional sizes.
func SegmentCapacities(route domain.Route, usedCapacity, vehicleCapacity float64) []float64 {
	if route.Len() < 2 {
		return []float64{}
	}

	capacities := make([]float64, 0, route.Len()-1)
	capacity := vehicleCapacity - usedCapacity
	capacities = append(capacities, capacity)

	for _, s := range route.Stops[1 : route.Len()-1] {
		capacity += s.Size
		capacities = append(capacities, capacity)
	}

	if route.Len() > 2 {
		capacities[len(capacities)-1] = vehicleCapacity
	}

	return capacities
}
