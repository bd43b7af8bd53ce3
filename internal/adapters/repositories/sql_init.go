package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"pickup-route-service/internal/domain"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Initialize the stop store schema. The statements are valid on both
// SQLite and Postgres.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		stop_id INTEGER PRIMARY KEY,
		kind TEXT NOT NULL CHECK (kind IN ('delivery', 'pickup')),
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		size DOUBLE PRECISION NOT NULL CHECK (size > 0),
		UNIQUE (kind, x, y)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stops_kind_stop_id
	ON stops(kind, stop_id);
	`

	statements := []string{
		createStopsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StopSeed struct {
	StopID int     `json:"stop_id"`
	Kind   string  `json:"kind"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Size   float64 `json:"size"`
}

// Populate the stop store with candidates from a JSON file.
func SeedFromJSON(ctx context.Context, db *sqlx.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stops: read %q: %w", jsonPath, err)
	}

	var data []StopSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stops: parse json: %w", err)
	}

	return SeedStops(ctx, db, data)
}

// Upsert the given stops, validating each one first.
func SeedStops(ctx context.Context, db *sqlx.DB, data []StopSeed) error {
	if db == nil {
		return errors.New("seed stops: DB is nil")
	}

	rows := make([]StopSeed, 0, len(data))
	for i, item := range data {
		if item.StopID <= 0 {
			return fmt.Errorf("seed stops: invalid stop_id at index %d: %d", i+1, item.StopID)
		}

		kind, err := domain.ParseStopKind(strings.TrimSpace(item.Kind))
		if err != nil || kind == domain.Depot {
			return fmt.Errorf("seed stops: item at index %d: kind must be delivery or pickup, got %q", i+1, item.Kind)
		}

		if item.Size <= 0 {
			return fmt.Errorf("seed stops: item at index %d: size must be positive, got %v", i+1, item.Size)
		}
		item.Kind = kind.String()
		rows = append(rows, item)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.Rebind(`
	INSERT INTO stops (
		stop_id,
		kind,
		x,
		y,
		size
	)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (stop_id) DO UPDATE
	SET kind = excluded.kind,
		x = excluded.x,
		y = excluded.y,
		size = excluded.size;
	`)
	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed stops: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.ExecContext(ctx, s.StopID, s.Kind, s.X, s.Y, s.Size); err != nil {
			return fmt.Errorf("seed stops: insert stop_id=%d: %w", s.StopID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stops: commit tx: %w", err)
	}

	return nil
}
