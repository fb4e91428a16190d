package service

import (
	"testing"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

func validZone(name string) domain.Zone {
	return domain.Zone{
		Name:           name,
		Shape:          domain.ShapeCircle,
		Center:         domain.Coordinate{Lat: 28.6, Lon: 77.2},
		ExtentMeters:   100,
		Classification: domain.ClassDanger,
	}
}

func TestNewRegistry_PreservesOrder(t *testing.T) {
	reg, err := NewRegistry([]domain.Zone{validZone("one"), validZone("two"), validZone("three")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zones := reg.Zones()
	if len(zones) != 3 {
		t.Fatalf("expected 3 zones, got %d", len(zones))
	}
	for i, want := range []string{"one", "two", "three"} {
		if zones[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, zones[i].Name)
		}
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	badShape := validZone("x")
	badShape.Shape = "triangle"

	badClass := validZone("x")
	badClass.Classification = "lava"

	zeroExtent := validZone("x")
	zeroExtent.ExtentMeters = 0

	tests := []struct {
		name  string
		zones []domain.Zone
	}{
		{"duplicate name", []domain.Zone{validZone("x"), validZone("x")}},
		{"empty name", []domain.Zone{validZone("")}},
		{"unknown shape", []domain.Zone{badShape}},
		{"unknown classification", []domain.Zone{badClass}},
		{"zero extent", []domain.Zone{zeroExtent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegistry(tt.zones); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewRegistry_Empty(t *testing.T) {
	reg, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("expected 0 zones, got %d", reg.Len())
	}
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	zones := []domain.Zone{validZone("a")}
	reg, err := NewRegistry(zones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zones[0].Name = "mutated"
	if reg.Zones()[0].Name != "a" {
		t.Error("registry must not observe caller mutations")
	}
}
