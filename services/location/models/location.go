package models

import (
	"time"

	"github.com/piresc/locationd/services/location/platform"
)

// Location is an immutable snapshot of one location fix.
//
// CourseAccuracy and SpeedAccuracy are nil when the platform did not report
// them, which is distinct from a reported accuracy of zero.
type Location struct {
	Coordinate         Coordinate `json:"coordinate"`
	Altitude           float64    `json:"altitude"`
	Course             float64    `json:"course"`
	CourseAccuracy     *float64   `json:"course_accuracy"`
	HorizontalAccuracy float64    `json:"horizontal_accuracy"`
	Speed              float64    `json:"speed"`
	SpeedAccuracy      *float64   `json:"speed_accuracy"`
	Timestamp          time.Time  `json:"timestamp"`
	VerticalAccuracy   float64    `json:"vertical_accuracy"`
}

// NewLocation snapshots a platform location.
func NewLocation(l *platform.Location) Location {
	loc := Location{
		Coordinate:         NewCoordinate(l.Coordinate),
		Altitude:           l.Altitude,
		Course:             l.Course,
		HorizontalAccuracy: l.HorizontalAccuracy,
		Speed:              l.Speed,
		Timestamp:          l.Timestamp,
		VerticalAccuracy:   l.VerticalAccuracy,
	}
	if l.Has(platform.FieldCourseAccuracy) {
		loc.CourseAccuracy = Ptr(l.CourseAccuracy)
	}
	if l.Has(platform.FieldSpeedAccuracy) {
		loc.SpeedAccuracy = Ptr(l.SpeedAccuracy)
	}
	return loc
}

// NewLocations snapshots a batch of platform locations, preserving order.
func NewLocations(ls []*platform.Location) []Location {
	out := make([]Location, 0, len(ls))
	for _, l := range ls {
		if l != nil {
			out = append(out, NewLocation(l))
		}
	}
	return out
}

// Platform returns an equivalent platform location.
func (l Location) Platform() *platform.Location {
	p := &platform.Location{
		Coordinate:         l.Coordinate.Platform(),
		Altitude:           l.Altitude,
		Course:             l.Course,
		HorizontalAccuracy: l.HorizontalAccuracy,
		Speed:              l.Speed,
		Timestamp:          l.Timestamp,
		VerticalAccuracy:   l.VerticalAccuracy,
	}
	if l.CourseAccuracy != nil {
		p.CourseAccuracy = *l.CourseAccuracy
		p.Supports |= platform.FieldCourseAccuracy
	}
	if l.SpeedAccuracy != nil {
		p.SpeedAccuracy = *l.SpeedAccuracy
		p.Supports |= platform.FieldSpeedAccuracy
	}
	return p
}

// Equal reports whether every field of l and o matches.
func (l Location) Equal(o Location) bool {
	return l.Coordinate == o.Coordinate &&
		l.Altitude == o.Altitude &&
		l.Course == o.Course &&
		optionalEqual(l.CourseAccuracy, o.CourseAccuracy) &&
		l.HorizontalAccuracy == o.HorizontalAccuracy &&
		l.Speed == o.Speed &&
		optionalEqual(l.SpeedAccuracy, o.SpeedAccuracy) &&
		l.Timestamp.Equal(o.Timestamp) &&
		l.VerticalAccuracy == o.VerticalAccuracy
}

func optionalEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
