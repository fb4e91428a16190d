package service

import (
	"context"
	"log"
	"sync"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
	"github.com/DivyanshTulsiani/geofence/module/geofence/internal/repository/database"
)

// Callbacks are the observer hooks the surrounding application (UI, logs)
// can attach to a monitoring session. All fields are optional. They are
// invoked synchronously on the sample-handling path, in arrival order.
type Callbacks struct {
	OnSafetyStatusChange func(domain.SafetyStatus)
	OnZoneChange         func(zoneName string)
	OnCoordinateChange   func(domain.Coordinate)
}

// Monitor is one monitoring session: it owns the occupancy state and the
// alert suppression state, and drives the locate → classify → detect →
// dispatch pipeline for every sample. Samples are processed strictly in
// arrival order under a single mutex; no two samples are ever in flight at
// once for a session.
type Monitor struct {
	registry   *Registry
	dispatcher *AlertDispatcher
	samples    database.SampleRepository
	cb         Callbacks

	mu       sync.Mutex
	detector *TransitionDetector
	status   domain.SafetyStatus
}

func NewMonitor(reg *Registry, dispatcher *AlertDispatcher, samples database.SampleRepository, cb Callbacks) *Monitor {
	return &Monitor{
		registry:   reg,
		dispatcher: dispatcher,
		samples:    samples,
		cb:         cb,
		detector:   NewTransitionDetector(),
		status:     domain.StatusSafe,
	}
}

// HandleSample runs one position sample through the pipeline. Persistence
// is best-effort and happens after the alerting path, so a database outage
// can never swallow a zone alert.
func (m *Monitor) HandleSample(ctx context.Context, s domain.Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()

	zone := Locate(s.Coordinate, m.registry)

	if m.cb.OnCoordinateChange != nil {
		m.cb.OnCoordinateChange(s.Coordinate)
	}

	if t := m.detector.Observe(zone, s); t != nil {
		if m.cb.OnZoneChange != nil {
			m.cb.OnZoneChange(zoneName(zone))
		}
		if v := Verdict(zone); v != m.status {
			m.status = v
			if m.cb.OnSafetyStatusChange != nil {
				m.cb.OnSafetyStatusChange(v)
			}
		}
		m.dispatcher.HandleTransition(ctx, t)
	}

	if m.samples != nil {
		if err := m.samples.Insert(ctx, &s); err != nil {
			log.Printf("save sample error: %v", err)
		}
	}
}

func (m *Monitor) Status() domain.SafetyStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Monitor) CurrentZone() *domain.Zone {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.detector.Current()
}

func (m *Monitor) LastCoordinate() *domain.Coordinate {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.detector.LastSample()
	if s == nil {
		return nil
	}
	c := s.Coordinate
	return &c
}

// Panic raises the manual alert channel with the latest known coordinate,
// or an explicit unknown position when no sample has arrived yet.
func (m *Monitor) Panic(ctx context.Context) domain.PanicAck {
	return m.dispatcher.Panic(ctx, m.LastCoordinate())
}
