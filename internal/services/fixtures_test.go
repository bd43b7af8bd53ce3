package services

import "pickup-route-service/internal/domain"

func possibleDeliveries() []domain.Stop {
	coordinates := []domain.Coordinate{
		{88, 373}, {100, 872}, {103, 436}, {107, 72}, {331, 459},
		{467, 215}, {615, 122}, {664, 131}, {701, 21}, {861, 271},
	}
	sizes := []float64{1.2, 10.6, 9.3, 3.1, 2.8, 3.7, 4.0, 6.2, 5.3, 3.9}

	stops := make([]domain.Stop, 0, len(coordinates))
	for i, c := range coordinates {
		stops = append(stops, domain.NewDeliveryStop(c.X, c.Y, sizes[i]))
	}
	return stops
}

func chosenDeliveries() []domain.Stop {
	return []domain.Stop{
		domain.NewDeliveryStop(1, 2, 2),
		domain.NewDeliveryStop(0, 2, 2),
		domain.NewDeliveryStop(1, 3, 2),
		domain.NewDeliveryStop(0, 1, 2),
	}
}

func pickupStops() []domain.Stop {
	return []domain.Stop{
		domain.NewPickupStop(2, 4, 2),
		domain.NewPickupStop(3, 4, 2),
		domain.NewPickupStop(2, 3, 2),
	}
}

func routeSegments() []domain.Segment {
	return []domain.Segment{
		{From: domain.Coordinate{X: 0, Y: 0}, To: domain.Coordinate{X: 0, Y: 1}},
		{From: domain.Coordinate{X: 0, Y: 1}, To: domain.Coordinate{X: 0, Y: 2}},
		{From: domain.Coordinate{X: 0, Y: 2}, To: domain.Coordinate{X: 1, Y: 2}},
		{From: domain.Coordinate{X: 1, Y: 2}, To: domain.Coordinate{X: 1, Y: 3}},
		{From: domain.Coordinate{X: 1, Y: 3}, To: domain.Coordinate{X: 0, Y: 0}},
	}
}

func plannedDeliveryRoute() domain.Route {
	depot := domain.Coordinate{}
	return domain.Route{Stops: []domain.Stop{
		domain.NewDepotStop(depot),
		domain.NewDeliveryStop(0, 1, 2),
		domain.NewDeliveryStop(0, 2, 2),
		domain.NewDeliveryStop(1, 2, 2),
		domain.NewDeliveryStop(1, 3, 2),
		domain.NewDepotStop(depot),
	}}
}
