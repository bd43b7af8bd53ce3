package render

import (
	"math"
	"pickup-route-service/internal/domain"

	"github.com/twpayne/go-polyline"
)

// EncodeRoute encodes the ordered route locations as a polyline of (x, y) pairs.
func EncodeRoute(route domain.Route) string {
	coords := make([][]float64, 0, route.Len())
	for _, c := range route.Locations() {
		coords = append(coords, c.CoordsToList())
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodeRoute reverses EncodeRoute into route locations.
func DecodeRoute(encoded string) ([]domain.Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Coordinate, 0, len(coords))
	for _, c := range coords {
		out = append(out, domain.Coordinate{X: int(math.Round(c[0])), Y: int(math.Round(c[1]))})
	}
	return out, nil
}
