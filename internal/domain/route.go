package domain

import "math"

// Straight-line edge between two consecutive stops of a route.
type Segment struct {
	From Coordinate
	To   Coordinate
}

// Represents an ordered depot-to-depot sequence of stops.
// The first and last stops are depots, no interior stop is a depot,
// and at most one pickup appears.
type Route struct {
	Stops []Stop
}

func (r Route) Len() int { return len(r.Stops) }

// Segments returns the adjacent stop pairs of the route, len(route)-1 entries.
func (r Route) Segments() []Segment {
	if len(r.Stops) < 2 {
		return []Segment{}
	}
	segments := make([]Segment, 0, len(r.Stops)-1)
	for i := 0; i+1 < len(r.Stops); i++ {
		segments = append(segments, Segment{From: r.Stops[i].Location, To: r.Stops[i+1].Location})
	}
	return segments
}

func (r Route) Locations() []Coordinate {
	out := make([]Coordinate, 0, len(r.Stops))
	for _, s := range r.Stops {
		out = append(out, s.Location)
	}
	return out
}

// Length is the total Euclidean length of the route.
func (r Route) Length() float64 {
	total := 0.0
	for _, seg := range r.Segments() {
		total += math.Sqrt(float64(SquaredDistance(seg.From, seg.To)))
	}
	return total
}

// Represents the planned route for a single vehicle.
// A RoutePlan is the output of the planning pipeline and contains no side effects.
// ChosenPickup is nil when no pickup candidate fits the residual capacity.
type RoutePlan struct {
	Route             Route
	DeliveryRoute     Route
	ChosenPickup      *Stop
	VehicleCapacity   float64
	UsedCapacity      float64
	SegmentCapacities []float64
	TotalDistance     float64
}
