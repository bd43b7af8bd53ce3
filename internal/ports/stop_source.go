package ports

import (
	"context"
	"pickup-route-service/internal/domain"
)

// Port: a boundary for acquiring candidate stops from upstream.
// The planner does not care whether the candidates come from a database,
// a feed or a generator.
type StopSource interface {
	// Return every candidate delivery stop.
	DeliveryCandidates(ctx context.Context) ([]domain.Stop, error)
	// Return every candidate pickup stop.
	PickupCandidates(ctx context.Context) ([]domain.Stop, error)
}
