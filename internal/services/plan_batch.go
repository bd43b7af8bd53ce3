package services

import (
	"context"
	"fmt"
	"pickup-route-service/internal/domain"

	"golang.org/x/sync/errgroup"
)

// PlanBatch plans independent routes concurrently, at most limit at a time.
//
// Every request owns its own stop universe, so the plans share no state.
// Results keep the request order. The first failure cancels the rest.
func PlanBatch(ctx context.Context, reqs []PlanRouteRequest, limit int) ([]*domain.RoutePlan, error) {
	if limit < 1 {
		limit = 1
	}

	plans := make([]*domain.RoutePlan, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			plan, err := PlanRoute(ctx, req)
			if err != nil {
				return fmt.Errorf("plan batch: request %d: %w", i, err)
			}
			plans[i] = plan
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return plans, nil
}
