package app

import (
	"context"
	"fmt"
	"io"
	"pickup-route-service/internal/adapters/generator"
	"pickup-route-service/internal/adapters/repositories"
	"pickup-route-service/internal/config"
	"pickup-route-service/internal/platform/db"
	"pickup-route-service/internal/ports"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewStopSource builds the stop source selected by cfg.StopSource.
// The returned closer releases the database when one was opened.
func NewStopSource(ctx context.Context, cfg config.Config) (ports.StopSource, io.Closer, error) {
	switch cfg.StopSource {
	case config.SourceRandom:
		src := generator.NewRandomStopSource(cfg.DeliveryCount, cfg.PickupCount, cfg.DeliverySeed, cfg.PickupSeed)
		return src, nopCloser{}, nil
	case config.SourceDB:
		conn, err := db.Open(cfg.DBDriver, cfg.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("new stop source: %w", err)
		}
		if err := repositories.InitSchema(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("new stop source: %w", err)
		}
		return repositories.NewSQLStopRepository(conn), conn, nil
	}
	return nil, nil, fmt.Errorf("new stop source: unknown source %q", cfg.StopSource)
}
