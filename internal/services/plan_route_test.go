package services

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRoute(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewLogger(&buf, slog.LevelInfo))

	plan, err := PlanRoute(ctx, PlanRouteRequest{
		Deliveries: chosenDeliveries(),
		Pickups:    pickupStops(),
		Capacity:   50,
		Depot:      domain.Coordinate{},
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, plan.UsedCapacity)
	assert.Equal(t, []float64{42, 44, 46, 48, 50}, plan.SegmentCapacities)
	assert.Equal(t, []domain.Coordinate{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {1, 3}, {0, 0}}, plan.DeliveryRoute.Locations())

	require.NotNil(t, plan.ChosenPickup)
	assert.Equal(t, domain.Coordinate{X: 2, Y: 3}, plan.ChosenPickup.Location)
	assert.Equal(t, plan.Route.Len(), plan.DeliveryRoute.Len()+1)
	assert.InDelta(t, plan.Route.Length(), plan.TotalDistance, 1e-9)

	assert.Contains(t, buf.String(), `"msg":"selected smallest deliveries"`)
	assert.Contains(t, buf.String(), `"msg":"pickup stop chosen"`)
}

func TestPlanRouteNoPickupFits(t *testing.T) {
	plan, err := PlanRoute(context.Background(), PlanRouteRequest{
		Deliveries: chosenDeliveries(),
		Pickups:    []domain.Stop{domain.NewPickupStop(2, 4, 60)},
		Capacity:   50,
	})
	require.NoError(t, err)

	assert.Nil(t, plan.ChosenPickup)
	assert.Equal(t, plan.DeliveryRoute, plan.Route)
}

func TestPlanRouteEmptySelection(t *testing.T) {
	plan, err := PlanRoute(context.Background(), PlanRouteRequest{
		Deliveries: possibleDeliveries(),
		Pickups:    []domain.Stop{domain.NewPickupStop(1, 1, 0.5)},
		Capacity:   1,
	})
	require.NoError(t, err)

	assert.Empty(t, plan.DeliveryRoute.Stops[1:plan.DeliveryRoute.Len()-1])
	assert.Equal(t, []float64{1}, plan.SegmentCapacities)

	// Depot to depot is a zero-length segment; the pickup still fits.
	require.NotNil(t, plan.ChosenPickup)
	assert.Equal(t, []domain.Coordinate{{0, 0}, {1, 1}, {0, 0}}, plan.Route.Locations())
}

func TestPlanRouteRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()

	_, err := PlanRoute(ctx, PlanRouteRequest{Capacity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)

	_, err = PlanRoute(ctx, PlanRouteRequest{
		Deliveries: []domain.Stop{domain.NewDeliveryStop(1, 1, -2)},
		Capacity:   50,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStop)

	_, err = PlanRoute(ctx, PlanRouteRequest{
		Pickups:  []domain.Stop{domain.NewPickupStop(1, 1, 2), domain.NewPickupStop(1, 1, 3)},
		Capacity: 50,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateLocation)

	// A depot among the deliveries would become an interior depot.
	_, err = PlanRoute(ctx, PlanRouteRequest{
		Deliveries: []domain.Stop{domain.NewDeliveryStop(1, 1, 1), domain.NewDepotStop(domain.Coordinate{X: 5, Y: 5})},
		Capacity:   50,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStop)

	// A delivery among the pickups would be returned as the chosen pickup.
	_, err = PlanRoute(ctx, PlanRouteRequest{
		Deliveries: []domain.Stop{domain.NewDeliveryStop(1, 1, 1)},
		Pickups:    []domain.Stop{domain.NewDeliveryStop(3, 3, 1)},
		Capacity:   50,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStop)
}

func TestPlanRouteDeterministic(t *testing.T) {
	req := PlanRouteRequest{
		Deliveries: possibleDeliveries(),
		Pickups:    pickupStops(),
		Capacity:   20,
	}

	first, err := PlanRoute(context.Background(), req)
	require.NoError(t, err)
	second, err := PlanRoute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
