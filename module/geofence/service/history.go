package service

import (
	"context"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
	"github.com/DivyanshTulsiani/geofence/module/geofence/internal/repository/database"
)

// HistoryService serves persisted alert and sample history to the HTTP
// layer.
type HistoryService struct {
	alerts  database.AlertRepository
	samples database.SampleRepository
}

func NewHistoryService(alerts database.AlertRepository, samples database.SampleRepository) *HistoryService {
	return &HistoryService{alerts: alerts, samples: samples}
}

func (s *HistoryService) ListAlerts(ctx context.Context, limit int) ([]domain.AlertRecord, error) {
	return s.alerts.ListRecent(ctx, limit)
}

func (s *HistoryService) LatestSample(ctx context.Context) (*domain.SampleRecord, error) {
	return s.samples.Latest(ctx)
}
