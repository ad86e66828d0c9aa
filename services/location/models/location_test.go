package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/piresc/locationd/services/location/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLocation() Location {
	return Location{
		Coordinate:         Coordinate{Latitude: -6.175392, Longitude: 106.827153},
		Altitude:           12.5,
		Course:             90,
		CourseAccuracy:     Ptr(1.0),
		HorizontalAccuracy: 5,
		Speed:              3.2,
		SpeedAccuracy:      Ptr(1.0),
		Timestamp:          time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC),
		VerticalAccuracy:   4,
	}
}

func TestLocation_Equal(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *Location)
		equal  bool
	}{
		{name: "Identical", mutate: func(l *Location) {}, equal: true},
		{name: "Speed accuracy differs", mutate: func(l *Location) { l.SpeedAccuracy = Ptr(2.0) }},
		{name: "Course accuracy differs", mutate: func(l *Location) { l.CourseAccuracy = Ptr(2.0) }},
		{name: "Speed accuracy absent", mutate: func(l *Location) { l.SpeedAccuracy = nil }},
		{name: "Altitude differs", mutate: func(l *Location) { l.Altitude = 13 }},
		{name: "Timestamp differs", mutate: func(l *Location) { l.Timestamp = l.Timestamp.Add(time.Second) }},
		{name: "Same instant other zone", mutate: func(l *Location) { l.Timestamp = l.Timestamp.In(time.FixedZone("WIB", 7*3600)) }, equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleLocation()
			b := sampleLocation()
			tt.mutate(&b)
			assert.Equal(t, tt.equal, a.Equal(b))
			assert.Equal(t, tt.equal, b.Equal(a))
		})
	}
}

func TestLocation_AbsentAccuracyIsNotZero(t *testing.T) {
	a := sampleLocation()
	b := sampleLocation()
	a.CourseAccuracy = nil
	b.CourseAccuracy = Ptr(0.0)

	assert.False(t, a.Equal(b))

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"course_accuracy":null`)

	data, err = json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"course_accuracy":0`)
}

func TestLocation_JSONRoundTrip(t *testing.T) {
	present := sampleLocation()
	absent := sampleLocation()
	absent.CourseAccuracy = nil
	absent.SpeedAccuracy = nil

	for _, loc := range []Location{present, absent} {
		data, err := json.Marshal(loc)
		require.NoError(t, err)

		var decoded Location
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, loc.Equal(decoded), "decoded %+v from %s", decoded, data)
	}
}

func TestNewLocation_OptionalFields(t *testing.T) {
	raw := &platform.Location{
		Coordinate:     platform.Coordinate2D{Latitude: 1, Longitude: 2},
		CourseAccuracy: 7,
		SpeedAccuracy:  9,
		Supports:       platform.FieldSpeedAccuracy,
	}

	loc := NewLocation(raw)

	assert.Nil(t, loc.CourseAccuracy)
	require.NotNil(t, loc.SpeedAccuracy)
	assert.Equal(t, 9.0, *loc.SpeedAccuracy)
	assert.Equal(t, Coordinate{Latitude: 1, Longitude: 2}, loc.Coordinate)
}

func TestLocation_PlatformRoundTrip(t *testing.T) {
	loc := sampleLocation()
	loc.CourseAccuracy = nil

	back := NewLocation(loc.Platform())

	assert.True(t, loc.Equal(back))
	assert.False(t, loc.Platform().Has(platform.FieldCourseAccuracy))
	assert.True(t, loc.Platform().Has(platform.FieldSpeedAccuracy))
}

func TestNewLocations_SkipsNil(t *testing.T) {
	locs := NewLocations([]*platform.Location{
		{Coordinate: platform.Coordinate2D{Latitude: 1}},
		nil,
		{Coordinate: platform.Coordinate2D{Latitude: 2}},
	})

	require.Len(t, locs, 2)
	assert.Equal(t, 1.0, locs[0].Coordinate.Latitude)
	assert.Equal(t, 2.0, locs[1].Coordinate.Latitude)
}
