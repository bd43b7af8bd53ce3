package dto

type CoordinateRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type StopRequest struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Size float64 `json:"size" validate:"gt=0"`
}

type StopResponse struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Size float64 `json:"size"`
	Kind string  `json:"kind"`
}

type ListStopsResponse struct {
	Deliveries []StopResponse `json:"deliveries"`
	Pickups    []StopResponse `json:"pickups"`
}
