package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/logging"
	"pickup-route-service/internal/platform/obs"
)

type PlanRouteRequest struct {
	Deliveries []domain.Stop
	Pickups    []domain.Stop
	Capacity   float64
	Depot      domain.Coordinate
}

// PlanRoute runs the planning pipeline for one vehicle:
// capacity selection, nearest-neighbor sequencing, segment capacity
// accounting and single pickup insertion.
//
// Each stage works on its own copies, so identical requests always yield
// identical plans. Only precondition violations are reported as errors.
func PlanRoute(ctx context.Context, req PlanRouteRequest) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "plan.route")(&err)

	if req.Capacity <= 0 || math.IsNaN(req.Capacity) || math.IsInf(req.Capacity, 0) {
		return nil, fmt.Errorf("plan route: capacity=%v: %w", req.Capacity, domain.ErrInvalidCapacity)
	}
	if err := domain.ValidateCandidates(req.Deliveries, domain.Delivery); err != nil {
		return nil, fmt.Errorf("plan route: deliveries: %w", err)
	}
	if err := domain.ValidateCandidates(req.Pickups, domain.Pickup); err != nil {
		return nil, fmt.Errorf("plan route: pickups: %w", err)
	}

	logger := logging.FromContext(ctx)

	selection := SelectDeliveries(req.Deliveries, req.Capacity)
	logger.Info("selected smallest deliveries",
		slog.Int("selected", len(selection.Chosen)),
		slog.Int("candidates", len(req.Deliveries)),
		slog.Float64("used_capacity", selection.UsedCapacity),
	)

	deliveryRoute := NearestNeighborRoute(selection.Chosen, req.Depot)
	capacities := SegmentCapacities(deliveryRoute, selection.UsedCapacity, req.Capacity)
	finalRoute, pickup := InsertPickup(deliveryRoute, capacities, req.Pickups)

	if pickup != nil {
		logger.Info("pickup stop chosen",
			slog.Int("x", pickup.Location.X),
			slog.Int("y", pickup.Location.Y),
			slog.Float64("size", pickup.Size),
		)
	} else {
		logger.Info("no pickup stop fits the route", slog.Int("candidates", len(req.Pickups)))
	}

	return &domain.RoutePlan{
		Route:             finalRoute,
		DeliveryRoute:     deliveryRoute,
		ChosenPickup:      pickup,
		VehicleCapacity:   req.Capacity,
		UsedCapacity:      selection.UsedCapacity,
		SegmentCapacities: capacities,
		TotalDistance:     finalRoute.Length(),
	}, nil
}
