package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

type zoneEntry struct {
	Name           string  `json:"name"`
	Shape          string  `json:"shape"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	ExtentMeters   float64 `json:"extent_meters"`
	Classification string  `json:"classification"`
}

// LoadZones reads the static zone catalog from a JSON file. File order is
// registry order, which is the overlap precedence order: reordering the
// file changes which zone wins where they overlap.
func LoadZones(path string) ([]domain.Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zones file: %w", err)
	}

	var entries []zoneEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse zones file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("zones file %s: no zones defined", path)
	}

	zones := make([]domain.Zone, len(entries))
	for i, e := range entries {
		zones[i] = domain.Zone{
			Name:           e.Name,
			Shape:          domain.ZoneShape(e.Shape),
			Center:         domain.Coordinate{Lat: e.Latitude, Lon: e.Longitude},
			ExtentMeters:   e.ExtentMeters,
			Classification: domain.Classification(e.Classification),
		}
	}
	return zones, nil
}
