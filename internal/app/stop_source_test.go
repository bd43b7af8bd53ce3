package app

import (
	"context"
	"testing"

	"pickup-route-service/internal/adapters/generator"
	"pickup-route-service/internal/adapters/repositories"
	"pickup-route-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStopSourceRandom(t *testing.T) {
	cfg := config.Config{StopSource: config.SourceRandom, DeliveryCount: 3, PickupCount: 2, DeliverySeed: 1, PickupSeed: 2}

	src, closer, err := NewStopSource(context.Background(), cfg)
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &generator.RandomStopSource{}, src)
	pickups, err := src.PickupCandidates(context.Background())
	require.NoError(t, err)
	assert.Len(t, pickups, 2)
}

func TestNewStopSourceDB(t *testing.T) {
	cfg := config.Config{StopSource: config.SourceDB, DBDriver: "sqlite", DBPath: ":memory:"}

	src, closer, err := NewStopSource(context.Background(), cfg)
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &repositories.SQLStopRepository{}, src)
	deliveries, err := src.DeliveryCandidates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, deliveries)
}

func TestNewStopSourceUnknown(t *testing.T) {
	_, _, err := NewStopSource(context.Background(), config.Config{StopSource: "feed"})
	assert.Error(t, err)
}
