package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"pickup-route-service/internal/adapters/render"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/logging"
	"pickup-route-service/internal/ports"
	"pickup-route-service/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PlanHandler struct {
	Source          ports.StopSource
	Validate        *validator.Validate
	DefaultCapacity float64
	DefaultDepot    domain.Coordinate
	BatchLimit      int
}

// Plan builds one route from inline candidates or the configured stop source.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	svcReq, err := h.toServiceRequest(r.Context(), req)
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), "load stop candidates failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	plan, err := services.PlanRoute(r.Context(), svcReq)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, ToPlanResponse(plan))
}

// PlanBatch plans several independent routes concurrently.
func (h *PlanHandler) PlanBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	svcReqs := make([]services.PlanRouteRequest, 0, len(req.Plans))
	for _, p := range req.Plans {
		svcReq, err := h.toServiceRequest(r.Context(), p)
		if err != nil {
			logging.LogError(logging.FromContext(r.Context()), "load stop candidates failed", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		svcReqs = append(svcReqs, svcReq)
	}

	plans, err := services.PlanBatch(r.Context(), svcReqs, h.BatchLimit)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	res := dto.ListPlanResponse{Plans: make([]dto.PlanResponse, 0, len(plans))}
	for _, p := range plans {
		res.Plans = append(res.Plans, ToPlanResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlanHandler) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	if isInputError(err) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	logging.LogError(logging.FromContext(r.Context()), "plan route failed", err,
		slog.String("path", r.URL.Path))
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func (h *PlanHandler) toServiceRequest(ctx context.Context, req dto.PlanRequest) (services.PlanRouteRequest, error) {
	out := services.PlanRouteRequest{
		Capacity: h.DefaultCapacity,
		Depot:    h.DefaultDepot,
	}
	if req.Capacity != nil {
		out.Capacity = *req.Capacity
	}
	if req.Depot != nil {
		out.Depot = domain.Coordinate{X: req.Depot.X, Y: req.Depot.Y}
	}

	if req.Deliveries != nil {
		out.Deliveries = toStops(req.Deliveries, domain.Delivery)
	} else {
		stops, err := h.Source.DeliveryCandidates(ctx)
		if err != nil {
			return services.PlanRouteRequest{}, fmt.Errorf("plan handler: delivery candidates: %w", err)
		}
		out.Deliveries = stops
	}

	if req.Pickups != nil {
		out.Pickups = toStops(req.Pickups, domain.Pickup)
	} else {
		stops, err := h.Source.PickupCandidates(ctx)
		if err != nil {
			return services.PlanRouteRequest{}, fmt.Errorf("plan handler: pickup candidates: %w", err)
		}
		out.Pickups = stops
	}

	return out, nil
}

func toStops(in []dto.StopRequest, kind domain.StopKind) []domain.Stop {
	out := make([]domain.Stop, 0, len(in))
	for _, s := range in {
		out = append(out, domain.Stop{Location: domain.Coordinate{X: s.X, Y: s.Y}, Size: s.Size, Kind: kind})
	}
	return out
}

// ToPlanResponse maps a plan onto its JSON representation under a fresh plan ID.
func ToPlanResponse(p *domain.RoutePlan) dto.PlanResponse {
	res := dto.PlanResponse{
		PlanID:            uuid.NewString(),
		VehicleCapacity:   p.VehicleCapacity,
		UsedCapacity:      p.UsedCapacity,
		SegmentCapacities: p.SegmentCapacities,
		TotalDistance:     p.TotalDistance,
		Route:             toStopResponses(p.Route.Stops),
		Polyline:          render.EncodeRoute(p.Route),
	}
	if p.ChosenPickup != nil {
		pickup := toStopResponse(*p.ChosenPickup)
		res.ChosenPickup = &pickup
	}
	return res
}
