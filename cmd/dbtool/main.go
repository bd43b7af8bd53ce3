package main

import (
	"context"
	"log/slog"
	"os"
	"pickup-route-service/internal/adapters/repositories"
	"pickup-route-service/internal/config"
	"pickup-route-service/internal/platform/db"
	"pickup-route-service/internal/platform/logging"

	"github.com/jmoiron/sqlx"
)

func main() {
	logger := logging.NewLogger(os.Stdout, slog.LevelInfo)

	if err := config.LoadDotEnv(); err != nil {
		logging.LogError(logger, "load env failed", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.LogError(logger, "load config failed", err)
		os.Exit(1)
	}

	conn, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logging.LogError(logger, "open database failed", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := initAndSeed(context.Background(), logger, conn, cfg.SeedPath); err != nil {
		logging.LogError(logger, "init and seed failed", err)
		conn.Close()
		os.Exit(1)
	}
}

func initAndSeed(ctx context.Context, logger *slog.Logger, conn *sqlx.DB, seedPath string) error {
	logger.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	logger.Info("schema ready")

	logger.Info("seeding database", slog.String("seed_path", seedPath))
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return err
	}
	logger.Info("seeding complete")

	return nil
}
