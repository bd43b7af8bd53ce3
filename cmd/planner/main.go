package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"pickup-route-service/internal/api/handlers"
	"pickup-route-service/internal/app"
	"pickup-route-service/internal/config"
	"pickup-route-service/internal/platform/logging"
	"pickup-route-service/internal/services"
)

// planner runs the planning pipeline once over the configured stop source
// and prints the resulting plan as JSON.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.DeliveryCount, "n-deliveries", cfg.DeliveryCount, "number of delivery candidates to generate")
	fs.IntVar(&cfg.PickupCount, "n-pickups", cfg.PickupCount, "number of pickup candidates to generate")
	fs.Float64Var(&cfg.VehicleCapacity, "capacity", cfg.VehicleCapacity, "vehicle capacity")
	fs.Uint64Var(&cfg.DeliverySeed, "seed", cfg.DeliverySeed, "seed for generated delivery candidates")
	fs.Uint64Var(&cfg.PickupSeed, "pickup-seed", cfg.PickupSeed, "seed for generated pickup candidates")
	fs.StringVar(&cfg.StopSource, "source", cfg.StopSource, "stop source: random or db")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(stderr, level)
	ctx = logging.WithLogger(ctx, logger)

	source, closer, err := app.NewStopSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	deliveries, err := source.DeliveryCandidates(ctx)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	pickups, err := source.PickupCandidates(ctx)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	logger.Info("loaded candidates",
		slog.Int("deliveries", len(deliveries)),
		slog.Int("pickups", len(pickups)),
	)

	plan, err := services.PlanRoute(ctx, services.PlanRouteRequest{
		Deliveries: deliveries,
		Pickups:    pickups,
		Capacity:   cfg.VehicleCapacity,
		Depot:      cfg.Depot,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(handlers.ToPlanResponse(plan))
}
