package config

import (
	"errors"
	"fmt"
	"os"
	"pickup-route-service/internal/domain"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceRandom = "random"
	SourceDB     = "db"
)

// Config is the process-level configuration shared by the binaries.
type Config struct {
	VehicleCapacity float64
	Depot           domain.Coordinate

	StopSource    string
	DeliveryCount int
	PickupCount   int
	DeliverySeed  uint64
	PickupSeed    uint64

	DBDriver    string
	DBPath      string
	DatabaseURL string
	SeedPath    string

	Port       string
	LogLevel   string
	BatchLimit int
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads a .env file if one exists. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var (
		cfg Config
		err error
	)

	if cfg.VehicleCapacity, err = getFloat("VEHICLE_CAPACITY", 50); err != nil {
		return Config{}, err
	}
	if cfg.VehicleCapacity <= 0 {
		return Config{}, fmt.Errorf("load config: VEHICLE_CAPACITY must be positive: %w", domain.ErrInvalidCapacity)
	}
	if cfg.Depot.X, err = getInt("DEPOT_X", 0); err != nil {
		return Config{}, err
	}
	if cfg.Depot.Y, err = getInt("DEPOT_Y", 0); err != nil {
		return Config{}, err
	}

	cfg.StopSource = Get("STOP_SOURCE", SourceRandom)
	if cfg.StopSource != SourceRandom && cfg.StopSource != SourceDB {
		return Config{}, fmt.Errorf("load config: STOP_SOURCE must be %q or %q, got %q", SourceRandom, SourceDB, cfg.StopSource)
	}
	if cfg.DeliveryCount, err = getInt("N_DELIVERIES", 1000); err != nil {
		return Config{}, err
	}
	if cfg.PickupCount, err = getInt("N_PICKUPS", 100); err != nil {
		return Config{}, err
	}
	if cfg.DeliverySeed, err = getUint("DELIVERY_SEED", 42); err != nil {
		return Config{}, err
	}
	if cfg.PickupSeed, err = getUint("PICKUP_SEED", 42); err != nil {
		return Config{}, err
	}

	cfg.DBDriver = Get("DB_DRIVER", "sqlite")
	cfg.DBPath = Get("DB_PATH", "data/app.db")
	cfg.DatabaseURL = Get("DATABASE_URL", "")
	cfg.SeedPath = Get("SEED_PATH", "data/seeds/stops.json")
	if cfg.DBDriver == "pgx" && cfg.StopSource == SourceDB && cfg.DatabaseURL == "" {
		return Config{}, errors.New("load config: DATABASE_URL is required for DB_DRIVER=pgx")
	}

	cfg.Port = Get("PORT", "8080")
	cfg.LogLevel = Get("LOG_LEVEL", "info")
	if cfg.BatchLimit, err = getInt("BATCH_LIMIT", 4); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DSN returns the data source name for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == "pgx" {
		return c.DatabaseURL
	}
	return c.DBPath
}

func getInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("load config: %s=%q: %w", key, v, err)
	}
	return n, nil
}

func getUint(key string, fallback uint64) (uint64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("load config: %s=%q: %w", key, v, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("load config: %s=%q: %w", key, v, err)
	}
	return f, nil
}
