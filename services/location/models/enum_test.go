package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationStatusFromRaw(t *testing.T) {
	tests := []struct {
		raw      int
		expected AuthorizationStatus
		ok       bool
	}{
		{raw: 0, expected: AuthorizationNotDetermined, ok: true},
		{raw: 1, expected: AuthorizationRestricted, ok: true},
		{raw: 2, expected: AuthorizationDenied, ok: true},
		{raw: 3, expected: AuthorizationAuthorizedAlways, ok: true},
		{raw: 4, expected: AuthorizationAuthorizedWhenInUse, ok: true},
		{raw: 5},
		{raw: -1},
	}

	for _, tt := range tests {
		status, ok := AuthorizationStatusFromRaw(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %d", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.raw, status.Raw())
		}
	}
}

func TestAccuracyAuthorizationFromRaw(t *testing.T) {
	full, ok := AccuracyAuthorizationFromRaw(0)
	assert.True(t, ok)
	assert.Equal(t, AccuracyFull, full)

	_, ok = AccuracyAuthorizationFromRaw(7)
	assert.False(t, ok)
}

func TestEnums_JSON(t *testing.T) {
	cfg := ServiceConfiguration{
		ActivityType:       Ptr(ActivityFitness),
		HeadingOrientation: Ptr(OrientationFaceUp),
	}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"activity_type":"fitness","heading_orientation":"faceUp"}`, string(data))

	var status AuthorizationStatus
	require.NoError(t, json.Unmarshal([]byte(`"authorizedWhenInUse"`), &status))
	assert.Equal(t, AuthorizationAuthorizedWhenInUse, status)

	assert.Error(t, json.Unmarshal([]byte(`"sometimes"`), &status))

	_, err = json.Marshal(AuthorizationStatus(42))
	assert.Error(t, err)
}

func TestServiceConfiguration_IsEmpty(t *testing.T) {
	assert.True(t, ServiceConfiguration{}.IsEmpty())
	assert.False(t, ServiceConfiguration{DistanceFilter: Ptr(DistanceFilterNone)}.IsEmpty())
}
