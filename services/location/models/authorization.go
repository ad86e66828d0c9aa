package models

// AuthorizationStatus is the app's location authorization.
type AuthorizationStatus int

const (
	AuthorizationNotDetermined AuthorizationStatus = iota
	AuthorizationRestricted
	AuthorizationDenied
	AuthorizationAuthorizedAlways
	AuthorizationAuthorizedWhenInUse
)

var authorizationStatusNames = map[AuthorizationStatus]string{
	AuthorizationNotDetermined:       "notDetermined",
	AuthorizationRestricted:          "restricted",
	AuthorizationDenied:              "denied",
	AuthorizationAuthorizedAlways:    "authorizedAlways",
	AuthorizationAuthorizedWhenInUse: "authorizedWhenInUse",
}

// AuthorizationStatusFromRaw converts a platform status value. Unknown
// values report false.
func AuthorizationStatusFromRaw(raw int) (AuthorizationStatus, bool) {
	return enumFromRaw(authorizationStatusNames, raw)
}

// Raw returns the platform value.
func (s AuthorizationStatus) Raw() int { return int(s) }

// IsAuthorized reports whether location data may be delivered.
func (s AuthorizationStatus) IsAuthorized() bool {
	return s == AuthorizationAuthorizedAlways || s == AuthorizationAuthorizedWhenInUse
}

func (s AuthorizationStatus) String() string { return enumName(authorizationStatusNames, s) }

func (s AuthorizationStatus) MarshalText() ([]byte, error) {
	return marshalEnum(authorizationStatusNames, s)
}

func (s *AuthorizationStatus) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(authorizationStatusNames, text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// AccuracyAuthorization is the precision the user granted.
type AccuracyAuthorization int

const (
	AccuracyFull AccuracyAuthorization = iota
	AccuracyReduced
)

var accuracyAuthorizationNames = map[AccuracyAuthorization]string{
	AccuracyFull:    "fullAccuracy",
	AccuracyReduced: "reducedAccuracy",
}

// AccuracyAuthorizationFromRaw converts a platform value. Unknown values
// report false.
func AccuracyAuthorizationFromRaw(raw int) (AccuracyAuthorization, bool) {
	return enumFromRaw(accuracyAuthorizationNames, raw)
}

func (a AccuracyAuthorization) Raw() int { return int(a) }

func (a AccuracyAuthorization) String() string { return enumName(accuracyAuthorizationNames, a) }

func (a AccuracyAuthorization) MarshalText() ([]byte, error) {
	return marshalEnum(accuracyAuthorizationNames, a)
}

func (a *AccuracyAuthorization) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(accuracyAuthorizationNames, text)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
