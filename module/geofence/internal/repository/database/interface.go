package database

import (
	"context"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

type AlertRepository interface {
	Insert(ctx context.Context, rec *domain.AlertRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.AlertRecord, error)
}

type SampleRepository interface {
	Insert(ctx context.Context, s *domain.Sample) error
	Latest(ctx context.Context) (*domain.SampleRecord, error)
}
