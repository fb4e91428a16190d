package postgres

import (
	"context"
	"database/sql"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
	"github.com/DivyanshTulsiani/geofence/module/geofence/internal/repository/database"
)

var _ database.AlertRepository = (*AlertRepo)(nil)

// AlertRepo persists dispatched alerts.
//
// Schema:
//
//	CREATE TABLE zone_alerts (
//	    id           SERIAL PRIMARY KEY,
//	    zone_name    TEXT NOT NULL DEFAULT '',
//	    kind         TEXT NOT NULL,
//	    latitude     DOUBLE PRECISION,
//	    longitude    DOUBLE PRECISION,
//	    recipient_id TEXT NOT NULL,
//	    sent_at      TIMESTAMPTZ NOT NULL
//	);
type AlertRepo struct {
	db *sql.DB
}

func NewAlertRepo(db *sql.DB) *AlertRepo {
	return &AlertRepo{db: db}
}

func (r *AlertRepo) Insert(ctx context.Context, rec *domain.AlertRecord) error {
	var lat, lon sql.NullFloat64
	if rec.Coordinate != nil {
		lat = sql.NullFloat64{Float64: rec.Coordinate.Lat, Valid: true}
		lon = sql.NullFloat64{Float64: rec.Coordinate.Lon, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO zone_alerts (zone_name, kind, latitude, longitude, recipient_id, sent_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ZoneName, string(rec.Kind), lat, lon, rec.RecipientID, rec.SentAt,
	)
	return err
}

func (r *AlertRepo) ListRecent(ctx context.Context, limit int) ([]domain.AlertRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, zone_name, kind, latitude, longitude, recipient_id, sent_at FROM zone_alerts ORDER BY sent_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.AlertRecord
	for rows.Next() {
		var rec domain.AlertRecord
		var kind string
		var lat, lon sql.NullFloat64
		if err := rows.Scan(&rec.ID, &rec.ZoneName, &kind, &lat, &lon, &rec.RecipientID, &rec.SentAt); err != nil {
			return nil, err
		}
		rec.Kind = domain.AlertKind(kind)
		if lat.Valid && lon.Valid {
			rec.Coordinate = &domain.Coordinate{Lat: lat.Float64, Lon: lon.Float64}
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}
