package service

import (
	"fmt"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

// Registry is the immutable, ordered catalog of zones. Declaration order is
// the precedence order for overlapping zones: the first zone that contains a
// point wins.
type Registry struct {
	zones []domain.Zone
}

func NewRegistry(zones []domain.Zone) (*Registry, error) {
	seen := make(map[string]struct{}, len(zones))
	for _, z := range zones {
		if z.Name == "" {
			return nil, fmt.Errorf("zone name: required")
		}
		if _, ok := seen[z.Name]; ok {
			return nil, fmt.Errorf("zone %q: duplicate name", z.Name)
		}
		seen[z.Name] = struct{}{}

		if z.ExtentMeters <= 0 {
			return nil, fmt.Errorf("zone %q: extent must be positive", z.Name)
		}
		switch z.Shape {
		case domain.ShapeCircle, domain.ShapeSquare:
		default:
			return nil, fmt.Errorf("zone %q: unknown shape %q", z.Name, z.Shape)
		}
		switch z.Classification {
		case domain.ClassSafe, domain.ClassCaution, domain.ClassDanger:
		default:
			return nil, fmt.Errorf("zone %q: unknown classification %q", z.Name, z.Classification)
		}
	}

	copied := make([]domain.Zone, len(zones))
	copy(copied, zones)
	return &Registry{zones: copied}, nil
}

// Zones returns the catalog in precedence order. Callers must not modify
// the returned slice.
func (r *Registry) Zones() []domain.Zone {
	return r.zones
}

func (r *Registry) Len() int {
	return len(r.zones)
}
