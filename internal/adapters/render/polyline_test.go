package render

import (
	"testing"

	"pickup-route-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoute(t *testing.T) {
	route := domain.Route{Stops: []domain.Stop{
		domain.NewDepotStop(domain.Coordinate{}),
		domain.NewDeliveryStop(88, 373, 1.2),
		domain.NewPickupStop(331, 459, 2.8),
		domain.NewDepotStop(domain.Coordinate{}),
	}}

	encoded := EncodeRoute(route)
	require.NotEmpty(t, encoded)

	got, err := DecodeRoute(encoded)
	require.NoError(t, err)
	assert.Equal(t, route.Locations(), got)
}

func TestEncodeRouteEmpty(t *testing.T) {
	assert.Empty(t, EncodeRoute(domain.Route{}))
}
