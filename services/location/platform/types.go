package platform

import "time"

// Coordinate2D is a latitude/longitude pair in degrees.
type Coordinate2D struct {
	Latitude  float64
	Longitude float64
}

// Field flags optional values that only newer platform versions report.
type Field uint8

const (
	FieldCourseAccuracy Field = 1 << iota
	FieldSpeedAccuracy
)

// Location is one location fix.
type Location struct {
	Coordinate         Coordinate2D
	Altitude           float64
	Course             float64
	CourseAccuracy     float64
	HorizontalAccuracy float64
	Speed              float64
	SpeedAccuracy      float64
	Timestamp          time.Time
	VerticalAccuracy   float64
	// Supports holds the optional fields populated for this fix.
	Supports Field
}

// Has reports whether f was populated by the platform.
func (l *Location) Has(f Field) bool {
	return l.Supports&f != 0
}

// Heading is one magnetometer sample. Sample identifies it; two headings
// with the same Sample are the same platform object.
type Heading struct {
	Sample          uint64
	MagneticHeading float64
	TrueHeading     float64
	HeadingAccuracy float64
	X               float64
	Y               float64
	Z               float64
	Timestamp       time.Time
}

// Visit is a place the device stayed at.
type Visit struct {
	Coordinate         Coordinate2D
	HorizontalAccuracy float64
	ArrivalDate        time.Time
	DepartureDate      time.Time
}

// Region is any monitorable region.
type Region interface {
	Identifier() string
	NotifyOnEntry() bool
	NotifyOnExit() bool
}

// RegionBase carries the fields shared by every region.
type RegionBase struct {
	ID      string
	OnEntry bool
	OnExit  bool
}

func (r *RegionBase) Identifier() string  { return r.ID }
func (r *RegionBase) NotifyOnEntry() bool { return r.OnEntry }
func (r *RegionBase) NotifyOnExit() bool  { return r.OnExit }

// CircularRegion is a center and radius in meters.
type CircularRegion struct {
	RegionBase
	Center Coordinate2D
	Radius float64
}

// PolygonRegion is bounded by an ordered list of vertices. The platform
// does not accept it back for monitoring requests.
type PolygonRegion struct {
	RegionBase
	Vertices []Coordinate2D
}
