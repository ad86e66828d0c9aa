package models

import "github.com/piresc/locationd/services/location/platform"

// Coordinate is a latitude/longitude pair in degrees. Ranges are not checked.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate converts a platform coordinate.
func NewCoordinate(c platform.Coordinate2D) Coordinate {
	return Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Platform returns the equivalent platform coordinate.
func (c Coordinate) Platform() platform.Coordinate2D {
	return platform.Coordinate2D{Latitude: c.Latitude, Longitude: c.Longitude}
}
