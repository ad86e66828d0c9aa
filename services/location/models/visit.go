package models

import (
	"time"

	"github.com/piresc/locationd/services/location/platform"
)

// DistantFuture is the departure date of a visit that has not ended.
var DistantFuture = time.Date(4001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Visit is an immutable record of a stay at one place.
type Visit struct {
	Coordinate         Coordinate `json:"coordinate"`
	HorizontalAccuracy float64    `json:"horizontal_accuracy"`
	ArrivalDate        time.Time  `json:"arrival_date"`
	DepartureDate      time.Time  `json:"departure_date"`
}

// NewVisit snapshots a platform visit.
func NewVisit(v *platform.Visit) Visit {
	return Visit{
		Coordinate:         NewCoordinate(v.Coordinate),
		HorizontalAccuracy: v.HorizontalAccuracy,
		ArrivalDate:        v.ArrivalDate,
		DepartureDate:      v.DepartureDate,
	}
}

// Platform returns an equivalent platform visit.
func (v Visit) Platform() *platform.Visit {
	return &platform.Visit{
		Coordinate:         v.Coordinate.Platform(),
		HorizontalAccuracy: v.HorizontalAccuracy,
		ArrivalDate:        v.ArrivalDate,
		DepartureDate:      v.DepartureDate,
	}
}

// IsOngoing reports whether the device is still at the visited place.
func (v Visit) IsOngoing() bool {
	return !v.DepartureDate.Before(DistantFuture)
}

// Equal reports whether every field of v and o matches.
func (v Visit) Equal(o Visit) bool {
	return v.Coordinate == o.Coordinate &&
		v.HorizontalAccuracy == o.HorizontalAccuracy &&
		v.ArrivalDate.Equal(o.ArrivalDate) &&
		v.DepartureDate.Equal(o.DepartureDate)
}
