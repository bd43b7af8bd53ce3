package generator

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"pickup-route-service/internal/domain"
	"slices"
)

// ErrPlaneTooSmall is returned when more distinct stops are requested
// than the coordinate plane can hold.
var ErrPlaneTooSmall = errors.New("coordinate plane too small")

// Options bound the generated coordinates and sizes.
// Coordinates fall in [MinCoordinate, MaxCoordinate), sizes in [MinSize, MinSize+MaxSize).
type Options struct {
	MinCoordinate int
	MaxCoordinate int
	MinSize       float64
	MaxSize       float64
	Seed          uint64
}

func DefaultOptions() Options {
	return Options{
		MinCoordinate: 1,
		MaxCoordinate: 1000,
		MinSize:       1,
		MaxSize:       10,
		Seed:          42,
	}
}

type point struct {
	coord domain.Coordinate
	size  float64
}

// GenerateStops returns n stops with pairwise distinct coordinates,
// ordered by (x, y). The same options always yield the same stops.
func GenerateStops(n int, kind domain.StopKind, opts Options) ([]domain.Stop, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate stops: n must be non-negative, got %d", n)
	}
	if opts.MaxCoordinate <= opts.MinCoordinate {
		return nil, fmt.Errorf("generate stops: max coordinate %d must exceed min %d: %w",
			opts.MaxCoordinate, opts.MinCoordinate, ErrPlaneTooSmall)
	}
	span := opts.MaxCoordinate - opts.MinCoordinate
	if span*span < n {
		return nil, fmt.Errorf("generate stops: cannot place %d distinct stops on a %dx%d plane: %w",
			n, span, span, ErrPlaneTooSmall)
	}
	if opts.MinSize <= 0 || opts.MaxSize <= 0 {
		return nil, fmt.Errorf("generate stops: sizes must be positive (min=%v max=%v)", opts.MinSize, opts.MaxSize)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	seen := make(map[domain.Coordinate]struct{}, n)
	points := make([]point, 0, n)
	for len(points) < n {
		c := domain.Coordinate{
			X: opts.MinCoordinate + rng.IntN(span),
			Y: opts.MinCoordinate + rng.IntN(span),
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		points = append(points, point{coord: c, size: rng.Float64()*opts.MaxSize + opts.MinSize})
	}

	slices.SortFunc(points, func(a, b point) int {
		if c := cmp.Compare(a.coord.X, b.coord.X); c != 0 {
			return c
		}
		return cmp.Compare(a.coord.Y, b.coord.Y)
	})

	stops := make([]domain.Stop, 0, n)
	for _, p := range points {
		stops = append(stops, domain.Stop{Location: p.coord, Size: p.size, Kind: kind})
	}
	return stops, nil
}

// RandomStopSource implements ports.StopSource with seeded generated stops.
type RandomStopSource struct {
	Deliveries   int
	Pickups      int
	DeliveryOpts Options
	PickupOpts   Options
}

func NewRandomStopSource(deliveries, pickups int, deliverySeed, pickupSeed uint64) *RandomStopSource {
	dOpts := DefaultOptions()
	dOpts.Seed = deliverySeed
	pOpts := DefaultOptions()
	pOpts.Seed = pickupSeed

	return &RandomStopSource{
		Deliveries:   deliveries,
		Pickups:      pickups,
		DeliveryOpts: dOpts,
		PickupOpts:   pOpts,
	}
}

func (s *RandomStopSource) DeliveryCandidates(ctx context.Context) ([]domain.Stop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stops, err := GenerateStops(s.Deliveries, domain.Delivery, s.DeliveryOpts)
	if err != nil {
		return nil, fmt.Errorf("random stop source: deliveries: %w", err)
	}
	return stops, nil
}

func (s *RandomStopSource) PickupCandidates(ctx context.Context) ([]domain.Stop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stops, err := GenerateStops(s.Pickups, domain.Pickup, s.PickupOpts)
	if err != nil {
		return nil, fmt.Errorf("random stop source: pickups: %w", err)
	}
	return stops, nil
}
