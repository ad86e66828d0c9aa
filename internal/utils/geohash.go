package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/piresc/locationd/services/location/models"
)

// DefaultGeohashPrecision is used when a caller passes a precision of zero
const DefaultGeohashPrecision uint = 6

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	if precision == 0 {
		precision = DefaultGeohashPrecision
	}
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash converts a geohash string to the coordinate of its center
func DecodeGeohash(hash string) models.Coordinate {
	latitude, longitude := geohash.Decode(hash)
	return models.Coordinate{Latitude: latitude, Longitude: longitude}
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
