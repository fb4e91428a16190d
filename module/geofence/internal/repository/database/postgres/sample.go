package postgres

import (
	"context"
	"database/sql"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
	"github.com/DivyanshTulsiani/geofence/module/geofence/internal/repository/database"
)

var _ database.SampleRepository = (*SampleRepo)(nil)

// SampleRepo persists accepted position samples.
//
// Schema:
//
//	CREATE TABLE position_samples (
//	    id          SERIAL PRIMARY KEY,
//	    latitude    DOUBLE PRECISION NOT NULL,
//	    longitude   DOUBLE PRECISION NOT NULL,
//	    recorded_at TIMESTAMPTZ NOT NULL
//	);
type SampleRepo struct {
	db *sql.DB
}

func NewSampleRepo(db *sql.DB) *SampleRepo {
	return &SampleRepo{db: db}
}

func (r *SampleRepo) Insert(ctx context.Context, s *domain.Sample) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO position_samples (latitude, longitude, recorded_at) VALUES ($1, $2, $3)`,
		s.Coordinate.Lat, s.Coordinate.Lon, s.Timestamp,
	)
	return err
}

func (r *SampleRepo) Latest(ctx context.Context) (*domain.SampleRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, latitude, longitude, recorded_at FROM position_samples ORDER BY recorded_at DESC LIMIT 1`,
	)

	var rec domain.SampleRecord
	if err := row.Scan(&rec.ID, &rec.Coordinate.Lat, &rec.Coordinate.Lon, &rec.RecordedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}
