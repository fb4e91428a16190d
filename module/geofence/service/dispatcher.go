package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
	"github.com/DivyanshTulsiani/geofence/module/geofence/internal/repository/database"
	"github.com/DivyanshTulsiani/geofence/module/geofence/internal/repository/publisher"
)

const (
	entryAlertTitle = "⚠️ Warning!"
	panicAlertTitle = "🆘 SOS"
)

// AlertDispatcher turns qualifying transitions into outbound notification
// requests. It remembers the last zone it alerted for, so staying inside a
// danger zone fires exactly one alert; a transition to a safe destination
// re-arms it. Delivery is fire-and-forget: publish failures are reported,
// never retried and never allowed to revert the suppression state.
type AlertDispatcher struct {
	pub         publisher.AlertPublisher
	alerts      database.AlertRepository
	recipientID string
	onDelivery  func(error)

	mu          sync.Mutex
	lastAlerted string
}

func NewAlertDispatcher(pub publisher.AlertPublisher, alerts database.AlertRepository, recipientID string, onDeliveryError func(error)) *AlertDispatcher {
	return &AlertDispatcher{
		pub:         pub,
		alerts:      alerts,
		recipientID: recipientID,
		onDelivery:  onDeliveryError,
	}
}

func (d *AlertDispatcher) HandleTransition(ctx context.Context, t *domain.Transition) {
	if Verdict(t.To) == domain.StatusSafe {
		d.mu.Lock()
		d.lastAlerted = ""
		d.mu.Unlock()
		return
	}

	d.mu.Lock()
	if t.To.Name == d.lastAlerted {
		d.mu.Unlock()
		return
	}
	d.lastAlerted = t.To.Name
	d.mu.Unlock()

	c := t.At.Coordinate
	req := &domain.AlertRequest{
		RecipientID: d.recipientID,
		Title:       entryAlertTitle,
		Body: fmt.Sprintf("You've entered %s at %.6f, %.6f. Please leave immediately.",
			t.To.Name, c.Lat, c.Lon),
	}
	d.deliver(ctx, req)
	d.record(ctx, &domain.AlertRecord{
		ZoneName:    t.To.Name,
		Kind:        domain.AlertZoneEntry,
		Coordinate:  &c,
		RecipientID: d.recipientID,
		SentAt:      t.At.Timestamp,
	})
}

// Panic raises a user-initiated alert independent of zone occupancy. The
// local acknowledgment is returned unconditionally, even when the outbound
// collaborator is unreachable. last may be nil when no position fix has
// been observed yet.
func (d *AlertDispatcher) Panic(ctx context.Context, last *domain.Coordinate) domain.PanicAck {
	body := "SOS raised, location unknown."
	if last != nil {
		body = fmt.Sprintf("SOS raised at %.6f, %.6f.", last.Lat, last.Lon)
	}

	now := time.Now()
	d.deliver(ctx, &domain.AlertRequest{
		RecipientID: d.recipientID,
		Title:       panicAlertTitle,
		Body:        body,
	})
	d.record(ctx, &domain.AlertRecord{
		Kind:        domain.AlertPanic,
		Coordinate:  last,
		RecipientID: d.recipientID,
		SentAt:      now,
	})

	return domain.PanicAck{Acknowledged: true, At: now, RecipientID: d.recipientID}
}

func (d *AlertDispatcher) deliver(ctx context.Context, req *domain.AlertRequest) {
	if err := d.pub.PublishAlert(ctx, req); err != nil {
		log.Printf("alert delivery error: %v", err)
		if d.onDelivery != nil {
			d.onDelivery(err)
		}
	}
}

func (d *AlertDispatcher) record(ctx context.Context, rec *domain.AlertRecord) {
	if d.alerts == nil {
		return
	}
	if err := d.alerts.Insert(ctx, rec); err != nil {
		log.Printf("record alert error: %v", err)
	}
}
