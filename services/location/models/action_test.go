package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_EnvelopeRoundTrip(t *testing.T) {
	region := NewCircularRegion("home", Coordinate{Latitude: 1, Longitude: 2}, 50)
	visit := Visit{
		Coordinate:         Coordinate{Latitude: 3, Longitude: 4},
		HorizontalAccuracy: 20,
		ArrivalDate:        time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		DepartureDate:      DistantFuture,
	}
	deniedErr := NewErrorWithCode(ErrorDenied)

	actions := []Action{
		DidChangeAuthorization{Status: AuthorizationAuthorizedAlways},
		DidUpdateLocations{Locations: []Location{sampleLocation()}},
		DidUpdateHeading{Heading: Heading{TrueHeading: 90, Timestamp: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}},
		DidEnterRegion{Region: region},
		DidExitRegion{Region: region},
		DidDetermineState{State: RegionStateInside, Region: region},
		DidStartMonitoring{Region: region},
		MonitoringDidFail{Region: &region, Error: NewErrorWithCode(ErrorRegionMonitoringFailure)},
		MonitoringDidFail{Error: NewErrorWithCode(ErrorRegionMonitoringFailure)},
		DidFinishDeferredUpdates{},
		DidFinishDeferredUpdates{Error: &deniedErr},
		DidVisit{Visit: visit},
		DidPauseLocationUpdates{},
		DidResumeLocationUpdates{},
		DidFailWithError{Error: deniedErr},
	}

	for _, action := range actions {
		t.Run(string(action.ActionType()), func(t *testing.T) {
			data, err := MarshalAction(action)
			require.NoError(t, err)

			decoded, err := UnmarshalAction(data)
			require.NoError(t, err)
			assert.Equal(t, action.ActionType(), decoded.ActionType())
			assert.IsType(t, action, decoded)
		})
	}
}

func TestAction_DecodedPayloads(t *testing.T) {
	loc := sampleLocation()
	data, err := MarshalAction(DidUpdateLocations{Locations: []Location{loc}})
	require.NoError(t, err)

	decoded, err := UnmarshalAction(data)
	require.NoError(t, err)
	got, ok := decoded.(DidUpdateLocations)
	require.True(t, ok)
	require.Len(t, got.Locations, 1)
	assert.True(t, loc.Equal(got.Locations[0]))

	visit := Visit{ArrivalDate: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), DepartureDate: DistantFuture}
	data, err = MarshalAction(DidVisit{Visit: visit})
	require.NoError(t, err)
	decoded, err = UnmarshalAction(data)
	require.NoError(t, err)
	gotVisit := decoded.(DidVisit).Visit
	assert.True(t, visit.Equal(gotVisit))
	assert.True(t, gotVisit.IsOngoing())
}

func TestUnmarshalAction_Errors(t *testing.T) {
	_, err := UnmarshalAction([]byte(`{"type":"didTeleport"}`))
	assert.ErrorContains(t, err, "unknown action type")

	_, err = UnmarshalAction([]byte(`not json`))
	assert.Error(t, err)

	_, err = UnmarshalAction([]byte(`{"type":"didChangeAuthorization","payload":{"status":"maybe"}}`))
	assert.Error(t, err)
}
