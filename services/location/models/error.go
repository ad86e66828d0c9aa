package models

import (
	"errors"

	"github.com/piresc/locationd/services/location/platform"
)

// ErrorCode is a well-known location service failure.
type ErrorCode int

const (
	ErrorLocationUnknown ErrorCode = iota
	ErrorDenied
	ErrorNetwork
	ErrorHeadingFailure
	ErrorRegionMonitoringDenied
	ErrorRegionMonitoringFailure
	ErrorRegionMonitoringSetupDelayed
	ErrorRegionMonitoringResponseDelayed
	ErrorGeocodeFoundNoResult
	ErrorGeocodeFoundPartialResult
	ErrorGeocodeCanceled
	ErrorDeferredFailed
	ErrorDeferredNotUpdatingLocation
	ErrorDeferredAccuracyTooLow
	ErrorDeferredDistanceFiltered
	ErrorDeferredCanceled
	ErrorRangingUnavailable
	ErrorRangingFailure
	ErrorPromptDeclined
	ErrorHistoricalLocation
)

var errorCodeNames = map[ErrorCode]string{
	ErrorLocationUnknown:                 "locationUnknown",
	ErrorDenied:                          "denied",
	ErrorNetwork:                         "network",
	ErrorHeadingFailure:                  "headingFailure",
	ErrorRegionMonitoringDenied:          "regionMonitoringDenied",
	ErrorRegionMonitoringFailure:         "regionMonitoringFailure",
	ErrorRegionMonitoringSetupDelayed:    "regionMonitoringSetupDelayed",
	ErrorRegionMonitoringResponseDelayed: "regionMonitoringResponseDelayed",
	ErrorGeocodeFoundNoResult:            "geocodeFoundNoResult",
	ErrorGeocodeFoundPartialResult:       "geocodeFoundPartialResult",
	ErrorGeocodeCanceled:                 "geocodeCanceled",
	ErrorDeferredFailed:                  "deferredFailed",
	ErrorDeferredNotUpdatingLocation:     "deferredNotUpdatingLocation",
	ErrorDeferredAccuracyTooLow:          "deferredAccuracyTooLow",
	ErrorDeferredDistanceFiltered:        "deferredDistanceFiltered",
	ErrorDeferredCanceled:                "deferredCanceled",
	ErrorRangingUnavailable:              "rangingUnavailable",
	ErrorRangingFailure:                  "rangingFailure",
	ErrorPromptDeclined:                  "promptDeclined",
	ErrorHistoricalLocation:              "historicalLocationError",
}

func (c ErrorCode) String() string { return enumName(errorCodeNames, c) }

func (c ErrorCode) MarshalText() ([]byte, error) { return marshalEnum(errorCodeNames, c) }

func (c *ErrorCode) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(errorCodeNames, text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Error is a normalized location service failure. Code is nil when the
// underlying failure is not a well-known location service error.
type Error struct {
	Code    *ErrorCode `json:"code"`
	Message string     `json:"message,omitempty"`

	err error
}

// NewError normalizes err. An err that already is, or wraps, an Error is
// returned as that Error.
func NewError(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}

	e = Error{err: err}
	if err != nil {
		e.Message = err.Error()
	}

	var pe *platform.Error
	if errors.As(err, &pe) && pe.Domain == platform.ErrorDomain {
		if code, ok := enumFromRaw(errorCodeNames, pe.Code); ok {
			e.Code = &code
		}
	}
	return e
}

// NewErrorWithCode builds an Error for a well-known code.
func NewErrorWithCode(code ErrorCode) Error {
	return Error{Code: &code, Message: code.String()}
}

// NewOptionalError normalizes err, keeping nil as nil.
func NewOptionalError(err error) *Error {
	if err == nil {
		return nil
	}
	e := NewError(err)
	return &e
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != nil {
		return e.Code.String()
	}
	return "location service error"
}

func (e Error) Unwrap() error { return e.err }

// Is matches another Error by code.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && e.Equal(t)
}

// Equal compares the classification only.
func (e Error) Equal(o Error) bool {
	return optionalEqual(e.Code, o.Code)
}
