package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

type mockSampleRepo struct {
	insertFn func(ctx context.Context, s *domain.Sample) error
	saved    []*domain.Sample
}

func (m *mockSampleRepo) Insert(ctx context.Context, s *domain.Sample) error {
	m.saved = append(m.saved, s)
	if m.insertFn != nil {
		return m.insertFn(ctx, s)
	}
	return nil
}

func (m *mockSampleRepo) Latest(_ context.Context) (*domain.SampleRecord, error) {
	return nil, errors.New("not implemented")
}

func newTestMonitor(t *testing.T, zones []domain.Zone, pub *mockAlertPublisher, cb Callbacks) *Monitor {
	t.Helper()
	reg, err := NewRegistry(zones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dispatcher := NewAlertDispatcher(pub, nil, "recipient-1", nil)
	return NewMonitor(reg, dispatcher, nil, cb)
}

func connaughtPlace() []domain.Zone {
	return []domain.Zone{
		{
			Name:           "A",
			Shape:          domain.ShapeCircle,
			Center:         domain.Coordinate{Lat: 28.6041, Lon: 77.2025},
			ExtentMeters:   100,
			Classification: domain.ClassDanger,
		},
	}
}

// The canonical walk: enter the danger zone, drift inside it, leave, come
// back. One alert on entry, silence while inside, a second alert on
// re-entry.
func TestMonitor_EntryDriftExitReentry(t *testing.T) {
	pub := &mockAlertPublisher{}
	m := newTestMonitor(t, connaughtPlace(), pub, Callbacks{})
	ctx := context.Background()

	m.HandleSample(ctx, sampleAt(28.6041, 77.2025)) // none→A, alert
	if len(pub.calls) != 1 {
		t.Fatalf("after entry: expected 1 alert, got %d", len(pub.calls))
	}

	m.HandleSample(ctx, sampleAt(28.6042, 77.2026)) // still inside, <100m
	if len(pub.calls) != 1 {
		t.Fatalf("after drift: expected still 1 alert, got %d", len(pub.calls))
	}

	m.HandleSample(ctx, sampleAt(28.7000, 77.3000)) // A→none, re-arm
	if len(pub.calls) != 1 {
		t.Fatalf("after exit: expected still 1 alert, got %d", len(pub.calls))
	}
	if m.Status() != domain.StatusSafe {
		t.Errorf("expected safe after exit, got %s", m.Status())
	}

	m.HandleSample(ctx, sampleAt(28.6041, 77.2025)) // none→A again
	if len(pub.calls) != 2 {
		t.Fatalf("after re-entry: expected 2 alerts, got %d", len(pub.calls))
	}
	if m.Status() != domain.StatusUnsafe {
		t.Errorf("expected unsafe after re-entry, got %s", m.Status())
	}
}

func TestMonitor_Callbacks(t *testing.T) {
	var statuses []domain.SafetyStatus
	var zones []string
	var coords []domain.Coordinate

	pub := &mockAlertPublisher{}
	m := newTestMonitor(t, connaughtPlace(), pub, Callbacks{
		OnSafetyStatusChange: func(s domain.SafetyStatus) { statuses = append(statuses, s) },
		OnZoneChange:         func(z string) { zones = append(zones, z) },
		OnCoordinateChange:   func(c domain.Coordinate) { coords = append(coords, c) },
	})
	ctx := context.Background()

	m.HandleSample(ctx, sampleAt(28.6041, 77.2025)) // entry
	m.HandleSample(ctx, sampleAt(28.6042, 77.2026)) // drift
	m.HandleSample(ctx, sampleAt(28.7000, 77.3000)) // exit

	// coordinate callback fires on every sample
	if len(coords) != 3 {
		t.Fatalf("expected 3 coordinate updates, got %d", len(coords))
	}
	// zone callback fires only on transitions: A then outside
	if len(zones) != 2 || zones[0] != "A" || zones[1] != "" {
		t.Fatalf("expected zone changes [A, \"\"], got %v", zones)
	}
	// safety flips unsafe on entry, back to safe on exit
	if len(statuses) != 2 || statuses[0] != domain.StatusUnsafe || statuses[1] != domain.StatusSafe {
		t.Fatalf("expected [unsafe, safe], got %v", statuses)
	}
}

func TestMonitor_InitialState(t *testing.T) {
	pub := &mockAlertPublisher{}
	m := newTestMonitor(t, connaughtPlace(), pub, Callbacks{})

	if m.Status() != domain.StatusSafe {
		t.Errorf("initial status must be safe, got %s", m.Status())
	}
	if m.CurrentZone() != nil {
		t.Error("initial zone must be none")
	}
	if m.LastCoordinate() != nil {
		t.Error("no coordinate before the first sample")
	}
}

func TestMonitor_SafeSamplesNeverAlert(t *testing.T) {
	pub := &mockAlertPublisher{}
	zones := []domain.Zone{
		{
			Name:           "park",
			Shape:          domain.ShapeSquare,
			Center:         domain.Coordinate{Lat: 28.62, Lon: 77.09},
			ExtentMeters:   200,
			Classification: domain.ClassSafe,
		},
	}
	m := newTestMonitor(t, zones, pub, Callbacks{})
	ctx := context.Background()

	m.HandleSample(ctx, sampleAt(28.62, 77.09))
	m.HandleSample(ctx, sampleAt(28.6201, 77.0901))
	m.HandleSample(ctx, sampleAt(50.0, 10.0))

	if len(pub.calls) != 0 {
		t.Fatalf("expected 0 alerts, got %d", len(pub.calls))
	}
}

func TestMonitor_PersistsSamples(t *testing.T) {
	pub := &mockAlertPublisher{}
	repo := &mockSampleRepo{}
	reg, err := NewRegistry(connaughtPlace())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewMonitor(reg, NewAlertDispatcher(pub, nil, "r", nil), repo, Callbacks{})

	m.HandleSample(context.Background(), sampleAt(28.7, 77.3))
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved sample, got %d", len(repo.saved))
	}
}

func TestMonitor_PersistenceFailureDoesNotBlockAlerts(t *testing.T) {
	pub := &mockAlertPublisher{}
	repo := &mockSampleRepo{
		insertFn: func(_ context.Context, _ *domain.Sample) error {
			return errors.New("db down")
		},
	}
	reg, err := NewRegistry(connaughtPlace())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewMonitor(reg, NewAlertDispatcher(pub, nil, "r", nil), repo, Callbacks{})

	m.HandleSample(context.Background(), sampleAt(28.6041, 77.2025))
	if len(pub.calls) != 1 {
		t.Fatalf("expected the entry alert despite db failure, got %d", len(pub.calls))
	}
}

func TestMonitor_LastCoordinate(t *testing.T) {
	pub := &mockAlertPublisher{}
	m := newTestMonitor(t, connaughtPlace(), pub, Callbacks{})

	m.HandleSample(context.Background(), domain.Sample{
		Coordinate: domain.Coordinate{Lat: 12.34, Lon: 56.78},
		Timestamp:  time.Unix(1715003456, 0),
	})

	c := m.LastCoordinate()
	if c == nil || c.Lat != 12.34 || c.Lon != 56.78 {
		t.Fatalf("expected (12.34, 56.78), got %v", c)
	}
}

func TestMonitor_PanicUsesLastCoordinate(t *testing.T) {
	pub := &mockAlertPublisher{}
	m := newTestMonitor(t, connaughtPlace(), pub, Callbacks{})
	ctx := context.Background()

	// before any sample: explicit unknown
	ack := m.Panic(ctx)
	if !ack.Acknowledged {
		t.Fatal("panic must acknowledge")
	}

	m.HandleSample(ctx, sampleAt(28.7, 77.3))
	m.Panic(ctx)

	if len(pub.calls) != 2 {
		t.Fatalf("expected 2 panic alerts, got %d", len(pub.calls))
	}
}
