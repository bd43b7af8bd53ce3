package domain

import (
	"fmt"
	"math"
)

// StopKind is the role a stop plays in a route.
type StopKind int

const (
	Delivery StopKind = iota
	Pickup
	Depot
)

func (k StopKind) String() string {
	switch k {
	case Delivery:
		return "delivery"
	case Pickup:
		return "pickup"
	case Depot:
		return "depot"
	default:
		return fmt.Sprintf("StopKind(%d)", int(k))
	}
}

// ParseStopKind maps the textual role used by storage and the API back to a StopKind.
func ParseStopKind(s string) (StopKind, error) {
	switch s {
	case "delivery":
		return Delivery, nil
	case "pickup":
		return Pickup, nil
	case "depot":
		return Depot, nil
	}
	return 0, fmt.Errorf("parse stop kind: unknown kind %q", s)
}

// Stop is an immutable location with a package size and a role.
// Depot stops always have size 0; every other stop has size > 0.
type Stop struct {
	Location Coordinate
	Size     float64
	Kind     StopKind
}

func NewDeliveryStop(x, y int, size float64) Stop {
	return Stop{Location: Coordinate{X: x, Y: y}, Size: size, Kind: Delivery}
}

func NewPickupStop(x, y int, size float64) Stop {
	return Stop{Location: Coordinate{X: x, Y: y}, Size: size, Kind: Pickup}
}

func NewDepotStop(at Coordinate) Stop {
	return Stop{Location: at, Kind: Depot}
}

func (s Stop) IsPickup() bool { return s.Kind == Pickup }
func (s Stop) IsDepot() bool  { return s.Kind == Depot }

// ValidateCandidates checks the preconditions the planners rely on:
// every stop has the expected kind, positive finite size and a coordinate
// no other candidate shares. Depots are never candidates.
func ValidateCandidates(stops []Stop, kind StopKind) error {
	if kind == Depot {
		return fmt.Errorf("validate candidates: depot is not a candidate kind: %w", ErrInvalidStop)
	}

	seen := make(map[Coordinate]int, len(stops))
	for i, s := range stops {
		if s.Kind != kind {
			return fmt.Errorf("validate candidates: index %d at (%d,%d) kind=%s, want %s: %w",
				i, s.Location.X, s.Location.Y, s.Kind, kind, ErrInvalidStop)
		}
		if s.Size <= 0 || math.IsNaN(s.Size) || math.IsInf(s.Size, 0) {
			return fmt.Errorf("validate candidates: index %d at (%d,%d) size=%v: %w",
				i, s.Location.X, s.Location.Y, s.Size, ErrInvalidStop)
		}
		if j, ok := seen[s.Location]; ok {
			return fmt.Errorf("validate candidates: index %d and %d share (%d,%d): %w",
				j, i, s.Location.X, s.Location.Y, ErrDuplicateLocation)
		}
		seen[s.Location] = i
	}
	return nil
}
