package services

import (
	"cmp"
	"math"
	"pickup-route-service/internal/domain"
	"slices"
)

// SegmentDistance is the squared distance from a pickup to its nearest route
// segment and that segment's index.
type SegmentDistance struct {
	Distance     float64
	SegmentIndex int
}

// pointSegmentDistance returns the squared distance from p to the closest point
// on segment s, using the clamped projection of p onto the segment.
// A zero-length segment degrades to the distance to its single point.
func pointSegmentDistance(p domain.Coordinate, s domain.Segment) float64 {
	dx := float64(s.To.X - s.From.X)
	dy := float64(s.To.Y - s.From.Y)
	px := float64(p.X - s.From.X)
	py := float64(p.Y - s.From.Y)

	lengthSquared := dx*dx + dy*dy
	if lengthSquared == 0 {
		return px*px + py*py
	}

	t := (px*dx + py*dy) / lengthSquared
	t = math.Max(0, math.Min(1, t))

	ex := px - t*dx
	ey := py - t*dy
	return ex*ex + ey*ey
}

// NearestSegments finds, for every pickup, the closest route segment.
// When several segments share the minimum the last one wins.
func NearestSegments(segments []domain.Segment, pickups []domain.Stop) []SegmentDistance {
	out := make([]SegmentDistance, 0, len(pickups))
	for _, p := range pickups {
		best := SegmentDistance{Distance: math.Inf(1), SegmentIndex: -1}
		for i, seg := range segments {
			// <= so that later segments take over on ties.
			if d := pointSegmentDistance(p.Location, seg); d <= best.Distance {
				best = SegmentDistance{Distance: d, SegmentIndex: i}
			}
		}
		out = append(out, best)
	}
	return out
}

// RankPickups returns pickup indices ordered by nearest distance, then by size
// so that the vehicle carries less on equal detours. Equal keys keep input order.
func RankPickups(pickups []domain.Stop, nearest []SegmentDistance) []int {
	order := make([]int, len(pickups))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(nearest[a].Distance, nearest[b].Distance); c != 0 {
			return c
		}
		return cmp.Compare(pickups[a].Size, pickups[b].Size)
	})
	return order
}

// InsertPickup splices the best fitting pickup into the route.
//
// Pickups are tried in ranked order; the first whose size fits the capacity of
// its nearest segment is inserted at the route position equal to that segment
// index (never before the opening depot). The input route is not modified.
// When nothing fits the original route is returned with a nil pickup.
func InsertPickup(
	route domain.Route,
	segmentCapacities []float64,
	pickups []domain.Stop,
) (domain.Route, *domain.Stop) {
	nearest := NearestSegments(route.Segments(), pickups)
	return insertRanked(route, segmentCapacities, pickups, nearest)
}

func insertRanked(
	route domain.Route,
	segmentCapacities []float64,
	pickups []domain.Stop,
	nearest []SegmentDistance,
) (domain.Route, *domain.Stop) {
	for _, idx := range RankPickups(pickups, nearest) {
		segmentIndex := nearest[idx].SegmentIndex
		if segmentIndex < 0 || segmentIndex >= len(segmentCapacities) {
			continue
		}

		pickup := pickups[idx]
		if pickup.Size > segmentCapacities[segmentIndex] {
			continue
		}

		// Index 0 would land before the opening depot; position 1 is still on segment 0.
		position := max(segmentIndex, 1)
		stops := slices.Clone(route.Stops)
		stops = slices.Insert(stops, position, pickup)

		return domain.Route{Stops: stops}, &pickup
	}

	return route, nil
}
