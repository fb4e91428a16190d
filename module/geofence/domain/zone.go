package domain

type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

type ZoneShape string

const (
	ShapeCircle ZoneShape = "circle"
	ShapeSquare ZoneShape = "square"
)

type Classification string

const (
	ClassSafe    Classification = "safe"
	ClassCaution Classification = "caution"
	ClassDanger  Classification = "danger"
)

// Zone is an immutable named region. ExtentMeters is the radius for circular
// zones and the half-side length for square zones.
type Zone struct {
	Name           string         `json:"name"`
	Shape          ZoneShape      `json:"shape"`
	Center         Coordinate     `json:"center"`
	ExtentMeters   float64        `json:"extent_meters"`
	Classification Classification `json:"classification"`
}

type SafetyStatus string

const (
	StatusSafe   SafetyStatus = "safe"
	StatusUnsafe SafetyStatus = "unsafe"
)
