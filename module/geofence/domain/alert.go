package domain

import "time"

type AlertKind string

const (
	AlertZoneEntry AlertKind = "zone_entry"
	AlertPanic     AlertKind = "panic"
)

// AlertRequest is the outbound notification payload handed to the delivery
// collaborator. Delivery is fire-and-forget.
type AlertRequest struct {
	RecipientID string `json:"recipient_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}

// AlertRecord is the persisted trace of a dispatched alert. Coordinate is
// nil for a panic alert raised before any position fix.
type AlertRecord struct {
	ID          int64       `json:"id"`
	ZoneName    string      `json:"zone_name,omitempty"`
	Kind        AlertKind   `json:"kind"`
	Coordinate  *Coordinate `json:"coordinate,omitempty"`
	RecipientID string      `json:"recipient_id"`
	SentAt      time.Time   `json:"sent_at"`
}

// PanicAck is the local acknowledgment returned to the user who raised a
// manual alert. It is produced regardless of delivery outcome.
type PanicAck struct {
	Acknowledged bool      `json:"acknowledged"`
	At           time.Time `json:"at"`
	RecipientID  string    `json:"recipient_id"`
}

type SampleRecord struct {
	ID         int64      `json:"id"`
	Coordinate Coordinate `json:"coordinate"`
	RecordedAt time.Time  `json:"recorded_at"`
}
