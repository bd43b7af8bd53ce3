package generator

import (
	"context"
	"testing"

	"pickup-route-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStops(t *testing.T) {
	opts := DefaultOptions()
	stops, err := GenerateStops(500, domain.Delivery, opts)
	require.NoError(t, err)
	require.Len(t, stops, 500)

	require.NoError(t, domain.ValidateCandidates(stops, domain.Delivery))
	for i, s := range stops {
		assert.Equal(t, domain.Delivery, s.Kind)
		assert.GreaterOrEqual(t, s.Location.X, opts.MinCoordinate)
		assert.Less(t, s.Location.X, opts.MaxCoordinate)
		assert.GreaterOrEqual(t, s.Location.Y, opts.MinCoordinate)
		assert.Less(t, s.Location.Y, opts.MaxCoordinate)
		assert.GreaterOrEqual(t, s.Size, opts.MinSize)
		assert.Less(t, s.Size, opts.MinSize+opts.MaxSize)

		if i > 0 {
			prev := stops[i-1].Location
			assert.True(t, prev.X < s.Location.X || (prev.X == s.Location.X && prev.Y < s.Location.Y),
				"stops must be ordered by (x, y)")
		}
	}
}

func TestGenerateStopsDeterministic(t *testing.T) {
	a, err := GenerateStops(50, domain.Pickup, DefaultOptions())
	require.NoError(t, err)
	b, err := GenerateStops(50, domain.Pickup, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other := DefaultOptions()
	other.Seed = 7
	c, err := GenerateStops(50, domain.Pickup, other)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateStopsFillsSmallPlane(t *testing.T) {
	opts := Options{MinCoordinate: 1, MaxCoordinate: 3, MinSize: 1, MaxSize: 1, Seed: 1}
	stops, err := GenerateStops(4, domain.Delivery, opts)
	require.NoError(t, err)
	assert.Equal(t, []domain.Coordinate{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, domain.Route{Stops: stops}.Locations())
}

func TestGenerateStopsPlaneTooSmall(t *testing.T) {
	opts := Options{MinCoordinate: 1, MaxCoordinate: 3, MinSize: 1, MaxSize: 1}
	_, err := GenerateStops(5, domain.Delivery, opts)
	assert.ErrorIs(t, err, ErrPlaneTooSmall)

	_, err = GenerateStops(-1, domain.Delivery, DefaultOptions())
	assert.Error(t, err)
}

func TestRandomStopSource(t *testing.T) {
	src := NewRandomStopSource(10, 5, 42, 43)

	deliveries, err := src.DeliveryCandidates(context.Background())
	require.NoError(t, err)
	assert.Len(t, deliveries, 10)
	assert.False(t, deliveries[0].IsPickup())

	pickups, err := src.PickupCandidates(context.Background())
	require.NoError(t, err)
	assert.Len(t, pickups, 5)
	assert.True(t, pickups[0].IsPickup())
	assert.False(t, pickups[0].IsDepot())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.DeliveryCandidates(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
