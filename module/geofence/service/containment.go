package service

import (
	"math"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

// Zones are at most a few kilometers across, so a locally flat
// equirectangular approximation is enough: scale the longitude delta by
// cos(center latitude) and treat one degree as 111km either axis.
const metersPerDegree = 111000.0

// Locate returns the first zone in registry order that contains c, or nil
// when c lies outside every zone. Boundary points are inside. Non-finite
// coordinates match nothing. Pure; safe for concurrent callers.
func Locate(c domain.Coordinate, reg *Registry) *domain.Zone {
	if !isFinite(c.Lat) || !isFinite(c.Lon) {
		return nil
	}
	zones := reg.Zones()
	for i := range zones {
		if contains(&zones[i], c) {
			return &zones[i]
		}
	}
	return nil
}

func contains(z *domain.Zone, c domain.Coordinate) bool {
	dx, dy := planarOffset(c, z.Center)
	switch z.Shape {
	case domain.ShapeCircle:
		return math.Hypot(dx, dy) <= z.ExtentMeters
	case domain.ShapeSquare:
		return math.Abs(dx) <= z.ExtentMeters && math.Abs(dy) <= z.ExtentMeters
	default:
		return false
	}
}

// planarOffset projects c into a meter grid centered on the zone.
func planarOffset(c, center domain.Coordinate) (dx, dy float64) {
	dx = (c.Lon - center.Lon) * math.Cos(toRad(center.Lat)) * metersPerDegree
	dy = (c.Lat - center.Lat) * metersPerDegree
	return dx, dy
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
