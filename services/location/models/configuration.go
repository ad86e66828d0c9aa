package models

// Desired accuracy values understood by the platform, in meters.
const (
	AccuracyBestForNavigation = -2.0
	AccuracyBest              = -1.0
	AccuracyNearestTenMeters  = 10.0
	AccuracyHundredMeters     = 100.0
	AccuracyKilometer         = 1000.0
	AccuracyThreeKilometers   = 3000.0
)

// DistanceFilterNone reports every movement. HeadingFilterNone does the same
// for heading changes.
const (
	DistanceFilterNone = -1.0
	HeadingFilterNone  = -1.0
)

// ActivityType hints how the device is expected to move.
type ActivityType int

const (
	ActivityOther ActivityType = iota + 1
	ActivityAutomotiveNavigation
	ActivityFitness
	ActivityOtherNavigation
	ActivityAirborne
)

var activityTypeNames = map[ActivityType]string{
	ActivityOther:                "other",
	ActivityAutomotiveNavigation: "automotiveNavigation",
	ActivityFitness:              "fitness",
	ActivityOtherNavigation:      "otherNavigation",
	ActivityAirborne:             "airborne",
}

func ActivityTypeFromRaw(raw int) (ActivityType, bool) {
	return enumFromRaw(activityTypeNames, raw)
}

func (a ActivityType) Raw() int { return int(a) }

func (a ActivityType) String() string { return enumName(activityTypeNames, a) }

func (a ActivityType) MarshalText() ([]byte, error) { return marshalEnum(activityTypeNames, a) }

func (a *ActivityType) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(activityTypeNames, text)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// DeviceOrientation is the reference orientation for heading values.
type DeviceOrientation int

const (
	OrientationUnknown DeviceOrientation = iota
	OrientationPortrait
	OrientationPortraitUpsideDown
	OrientationLandscapeLeft
	OrientationLandscapeRight
	OrientationFaceUp
	OrientationFaceDown
)

var deviceOrientationNames = map[DeviceOrientation]string{
	OrientationUnknown:            "unknown",
	OrientationPortrait:           "portrait",
	OrientationPortraitUpsideDown: "portraitUpsideDown",
	OrientationLandscapeLeft:      "landscapeLeft",
	OrientationLandscapeRight:     "landscapeRight",
	OrientationFaceUp:             "faceUp",
	OrientationFaceDown:           "faceDown",
}

func DeviceOrientationFromRaw(raw int) (DeviceOrientation, bool) {
	return enumFromRaw(deviceOrientationNames, raw)
}

func (o DeviceOrientation) Raw() int { return int(o) }

func (o DeviceOrientation) String() string { return enumName(deviceOrientationNames, o) }

func (o DeviceOrientation) MarshalText() ([]byte, error) {
	return marshalEnum(deviceOrientationNames, o)
}

func (o *DeviceOrientation) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(deviceOrientationNames, text)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ServiceConfiguration is a sparse set of manager properties. Nil fields
// leave the current value untouched.
type ServiceConfiguration struct {
	ActivityType                       *ActivityType      `json:"activity_type,omitempty"`
	AllowsBackgroundLocationUpdates    *bool              `json:"allows_background_location_updates,omitempty"`
	DesiredAccuracy                    *float64           `json:"desired_accuracy,omitempty"`
	DistanceFilter                     *float64           `json:"distance_filter,omitempty"`
	HeadingFilter                      *float64           `json:"heading_filter,omitempty"`
	HeadingOrientation                 *DeviceOrientation `json:"heading_orientation,omitempty"`
	PausesLocationUpdatesAutomatically *bool              `json:"pauses_location_updates_automatically,omitempty"`
	ShowsBackgroundLocationIndicator   *bool              `json:"shows_background_location_indicator,omitempty"`
}

// IsEmpty reports whether applying c would change nothing.
func (c ServiceConfiguration) IsEmpty() bool {
	return c == ServiceConfiguration{}
}
