package publisher

import (
	"context"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

type AlertPublisher interface {
	PublishAlert(ctx context.Context, req *domain.AlertRequest) error
}
