package repositories

import (
	"context"
	"errors"
	"fmt"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/obs"

	"github.com/jmoiron/sqlx"
)

// SQL-backed implementation of the StopSource port.
// Works against SQLite and Postgres; placeholders are rebound per driver.
type SQLStopRepository struct{ DB *sqlx.DB }

func NewSQLStopRepository(db *sqlx.DB) *SQLStopRepository {
	return &SQLStopRepository{DB: db}
}

type stopRow struct {
	StopID int     `db:"stop_id"`
	Kind   string  `db:"kind"`
	X      int     `db:"x"`
	Y      int     `db:"y"`
	Size   float64 `db:"size"`
}

func (s *SQLStopRepository) DeliveryCandidates(ctx context.Context) ([]domain.Stop, error) {
	return s.listStops(ctx, domain.Delivery)
}

func (s *SQLStopRepository) PickupCandidates(ctx context.Context) ([]domain.Stop, error) {
	return s.listStops(ctx, domain.Pickup)
}

// Return the stops of one kind in stop_id order.
func (s *SQLStopRepository) listStops(ctx context.Context, kind domain.StopKind) (_ []domain.Stop, err error) {
	defer obs.Time(ctx, "stops.repository.list."+kind.String())(&err)

	if s.DB == nil {
		return nil, errors.New("sql stop repository: DB is nil")
	}

	query := s.DB.Rebind(`
	SELECT
		stop_id,
		kind,
		x,
		y,
		size
	FROM stops
	WHERE kind = ?
	ORDER BY stop_id;
	`)

	var rows []stopRow
	if err := s.DB.SelectContext(ctx, &rows, query, kind.String()); err != nil {
		return nil, fmt.Errorf("list stops: query stops table kind=%s: %w", kind, err)
	}

	stops := make([]domain.Stop, 0, len(rows))
	for _, r := range rows {
		stops = append(stops, domain.Stop{
			Location: domain.Coordinate{X: r.X, Y: r.Y},
			Size:     r.Size,
			Kind:     kind,
		})
	}

	return stops, nil
}
