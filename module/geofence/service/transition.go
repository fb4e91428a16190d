package service

import "github.com/DivyanshTulsiani/geofence/module/geofence/domain"

// TransitionDetector tracks which zone (or nil for "outside all zones")
// held the previous sample and emits a Transition only when that identity
// changes. It is not safe for concurrent use; the monitor serializes calls.
type TransitionDetector struct {
	current    *domain.Zone
	previous   *domain.Zone
	lastSample *domain.Sample
}

func NewTransitionDetector() *TransitionDetector {
	return &TransitionDetector{}
}

// Observe records one sample resolved to zone z. It returns a non-nil
// Transition when the occupied zone changed since the last sample, nil for
// movement within the same zone (or continued absence of any zone).
func (d *TransitionDetector) Observe(z *domain.Zone, s domain.Sample) *domain.Transition {
	d.lastSample = &s

	if zoneName(z) == zoneName(d.current) {
		return nil
	}

	t := &domain.Transition{From: d.current, To: z, At: s}
	d.previous = d.current
	d.current = z
	return t
}

func (d *TransitionDetector) Current() *domain.Zone { return d.current }

func (d *TransitionDetector) Previous() *domain.Zone { return d.previous }

func (d *TransitionDetector) LastSample() *domain.Sample { return d.lastSample }

// zoneName gives nil its own identity distinct from every named zone.
func zoneName(z *domain.Zone) string {
	if z == nil {
		return ""
	}
	return z.Name
}
