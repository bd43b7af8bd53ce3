package dto

// PlanRequest plans one route. Omitted candidate lists are read from the
// configured stop source; omitted capacity and depot use the server defaults.
type PlanRequest struct {
	Capacity   *float64           `json:"capacity" validate:"omitempty,gt=0"`
	Depot      *CoordinateRequest `json:"depot"`
	Deliveries []StopRequest      `json:"deliveries" validate:"omitempty,dive"`
	Pickups    []StopRequest      `json:"pickups" validate:"omitempty,dive"`
}

type PlanBatchRequest struct {
	Plans []PlanRequest `json:"plans" validate:"required,min=1,max=20,dive"`
}

type PlanResponse struct {
	PlanID            string         `json:"plan_id"`
	VehicleCapacity   float64        `json:"vehicle_capacity"`
	UsedCapacity      float64        `json:"used_capacity"`
	SegmentCapacities []float64      `json:"segment_capacities"`
	TotalDistance     float64        `json:"total_distance"`
	Route             []StopResponse `json:"route"`
	ChosenPickup      *StopResponse  `json:"chosen_pickup"`
	Polyline          string         `json:"polyline"`
}

type ListPlanResponse struct {
	Plans []PlanResponse `json:"plans"`
}
