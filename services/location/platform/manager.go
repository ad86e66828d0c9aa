// Package platform describes the operating system location service as this
// repository consumes it. Nothing in here is safe for concurrent use: a
// Manager must only be touched from the goroutine that owns it, and the
// reference types it hands out may be mutated by the platform after a
// callback returns.
package platform

import "time"

// Manager is the platform location manager.
type Manager interface {
	// SetDelegate installs the receiver of every platform callback.
	// Callbacks may arrive on any goroutine.
	SetDelegate(d Delegate)

	AuthorizationStatus() int
	// AccuracyAuthorization reports false when the platform does not
	// support accuracy authorization.
	AccuracyAuthorization() (int, bool)
	LocationServicesEnabled() bool
	HeadingAvailable() bool
	IsRangingAvailable() bool
	SignificantLocationChangeMonitoringAvailable() bool
	Heading() *Heading
	Location() *Location
	MonitoredRegions() []Region
	MaximumRegionMonitoringDistance() float64

	RequestAlwaysAuthorization()
	RequestWhenInUseAuthorization()
	RequestLocation()
	StartUpdatingLocation()
	StopUpdatingLocation()
	StartUpdatingHeading()
	StopUpdatingHeading()
	DismissHeadingCalibrationDisplay()
	StartMonitoring(region Region)
	StopMonitoring(region Region)
	RequestState(region Region)
	StartMonitoringSignificantLocationChanges()
	StopMonitoringSignificantLocationChanges()
	StartMonitoringVisits()
	StopMonitoringVisits()
	AllowDeferredLocationUpdates(distance float64, timeout time.Duration)
	DisallowDeferredLocationUpdates()
	// RequestTemporaryFullAccuracyAuthorization calls completion exactly
	// once, on any goroutine.
	RequestTemporaryFullAccuracyAuthorization(purposeKey string, completion func(error))

	SetActivityType(raw int)
	SetAllowsBackgroundLocationUpdates(v bool)
	SetDesiredAccuracy(v float64)
	SetDistanceFilter(v float64)
	SetHeadingFilter(v float64)
	SetHeadingOrientation(raw int)
	SetPausesLocationUpdatesAutomatically(v bool)
	SetShowsBackgroundLocationIndicator(v bool)
}

// Delegate is the platform callback contract.
type Delegate interface {
	DidChangeAuthorization(status int)
	DidUpdateLocations(locations []*Location)
	DidUpdateHeading(heading *Heading)
	DidFailWithError(err error)
	DidEnterRegion(region Region)
	DidExitRegion(region Region)
	DidDetermineState(state int, region Region)
	DidStartMonitoring(region Region)
	// MonitoringDidFail may be called with a nil region.
	MonitoringDidFail(region Region, err error)
	// DidFinishDeferredUpdates is called with a nil error on success.
	DidFinishDeferredUpdates(err error)
	DidPauseLocationUpdates()
	DidResumeLocationUpdates()
	DidVisit(visit *Visit)
}
