// Package simulator provides a scriptable platform.Manager.
//
// The simulator holds every manager property in memory and raises delegate
// callbacks on its own serial goroutine, the way the platform does. It is
// used by the daemon when no hardware is present and by tests that need a
// manager they can drive.
package simulator

import (
	"sync"
	"time"

	"github.com/piresc/locationd/internal/pkg/logger"
	"github.com/piresc/locationd/services/location/models"
	"github.com/piresc/locationd/services/location/platform"
)

const callbackBuffer = 1024

// Settings is the configurable state of the simulated manager.
type Settings struct {
	ActivityType                       int
	AllowsBackgroundLocationUpdates    bool
	DesiredAccuracy                    float64
	DistanceFilter                     float64
	HeadingFilter                      float64
	HeadingOrientation                 int
	PausesLocationUpdatesAutomatically bool
	ShowsBackgroundLocationIndicator   bool
}

// Activity reports which services are running.
type Activity struct {
	UpdatingLocation   bool
	UpdatingHeading    bool
	SignificantChanges bool
	Visits             bool
	Deferred           bool
}

// Simulator is an in-memory platform.Manager.
type Simulator struct {
	mu sync.Mutex

	delegate platform.Delegate

	grant         int
	authorization int
	accuracy      *int

	servicesEnabled      bool
	headingAvailable     bool
	rangingAvailable     bool
	significantAvailable bool
	maxRegionDistance    float64

	heading  *platform.Heading
	location *platform.Location
	regions  []platform.Region
	states   map[string]int

	settings Settings
	activity Activity

	callbacks chan func()
	done      chan struct{}
	closeOnce sync.Once
}

var _ platform.Manager = (*Simulator)(nil)

// Option configures a Simulator.
type Option func(*Simulator)

// WithGrant sets the status authorization requests resolve to.
func WithGrant(status models.AuthorizationStatus) Option {
	return func(s *Simulator) { s.grant = status.Raw() }
}

// WithAuthorization sets the initial authorization status.
func WithAuthorization(status models.AuthorizationStatus) Option {
	return func(s *Simulator) { s.authorization = status.Raw() }
}

// WithAccuracyAuthorization makes accuracy authorization available.
func WithAccuracyAuthorization(a models.AccuracyAuthorization) Option {
	return func(s *Simulator) {
		raw := a.Raw()
		s.accuracy = &raw
	}
}

// WithLocation seeds the last known location.
func WithLocation(l *platform.Location) Option {
	return func(s *Simulator) { s.location = l }
}

// WithServicesEnabled toggles the system-wide location services switch.
func WithServicesEnabled(enabled bool) Option {
	return func(s *Simulator) { s.servicesEnabled = enabled }
}

// WithHeadingAvailable toggles magnetometer support.
func WithHeadingAvailable(available bool) Option {
	return func(s *Simulator) { s.headingAvailable = available }
}

// New creates a simulator and starts its callback goroutine. Call Close
// to stop it.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		grant:                models.AuthorizationAuthorizedWhenInUse.Raw(),
		authorization:        models.AuthorizationNotDetermined.Raw(),
		servicesEnabled:      true,
		headingAvailable:     true,
		rangingAvailable:     false,
		significantAvailable: true,
		maxRegionDistance:    10000,
		states:               make(map[string]int),
		settings: Settings{
			ActivityType:                       models.ActivityOther.Raw(),
			DesiredAccuracy:                    models.AccuracyBest,
			DistanceFilter:                     models.DistanceFilterNone,
			HeadingFilter:                      1,
			HeadingOrientation:                 models.OrientationPortrait.Raw(),
			PausesLocationUpdatesAutomatically: true,
		},
		callbacks: make(chan func(), callbackBuffer),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.run()
	return s
}

func (s *Simulator) run() {
	for {
		select {
		case fn := <-s.callbacks:
			fn()
		case <-s.done:
			return
		}
	}
}

// Close stops the callback goroutine. Pending callbacks are dropped.
func (s *Simulator) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		logger.Debug("Simulator closed")
	})
}

func (s *Simulator) schedule(fn func()) {
	select {
	case s.callbacks <- fn:
	case <-s.done:
	}
}

// emit raises a delegate callback on the callback goroutine. Callbacks
// raised with no delegate installed are dropped.
func (s *Simulator) emit(call func(d platform.Delegate)) {
	s.schedule(func() {
		s.mu.Lock()
		d := s.delegate
		s.mu.Unlock()
		if d != nil {
			call(d)
		}
	})
}

// Flush blocks until every callback raised before it has been delivered.
func (s *Simulator) Flush() {
	ch := make(chan struct{})
	s.schedule(func() { close(ch) })
	select {
	case <-ch:
	case <-s.done:
	}
}

func (s *Simulator) SetDelegate(d platform.Delegate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delegate = d
}

func (s *Simulator) AuthorizationStatus() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authorization
}

func (s *Simulator) AccuracyAuthorization() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accuracy == nil {
		return 0, false
	}
	return *s.accuracy, true
}

func (s *Simulator) LocationServicesEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.servicesEnabled
}

func (s *Simulator) HeadingAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headingAvailable
}

func (s *Simulator) IsRangingAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rangingAvailable
}

func (s *Simulator) SignificantLocationChangeMonitoringAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.significantAvailable
}

func (s *Simulator) Heading() *platform.Heading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heading
}

func (s *Simulator) Location() *platform.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

func (s *Simulator) MonitoredRegions() []platform.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]platform.Region, len(s.regions))
	copy(out, s.regions)
	return out
}

func (s *Simulator) MaximumRegionMonitoringDistance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxRegionDistance
}

func (s *Simulator) RequestAlwaysAuthorization() {
	s.resolveAuthorization(s.grant)
}

func (s *Simulator) RequestWhenInUseAuthorization() {
	s.mu.Lock()
	grant := s.grant
	s.mu.Unlock()
	if grant == models.AuthorizationAuthorizedAlways.Raw() {
		grant = models.AuthorizationAuthorizedWhenInUse.Raw()
	}
	s.resolveAuthorization(grant)
}

// resolveAuthorization answers a prompt. Only an undetermined status is
// changed, matching the platform's one-shot prompt.
func (s *Simulator) resolveAuthorization(grant int) {
	s.mu.Lock()
	if s.authorization != models.AuthorizationNotDetermined.Raw() {
		s.mu.Unlock()
		return
	}
	s.authorization = grant
	s.mu.Unlock()

	s.emit(func(d platform.Delegate) { d.DidChangeAuthorization(grant) })
}

func (s *Simulator) authorized() bool {
	status, ok := models.AuthorizationStatusFromRaw(s.authorization)
	return ok && status.IsAuthorized() && s.servicesEnabled
}

func (s *Simulator) RequestLocation() {
	s.mu.Lock()
	authorized := s.authorized()
	loc := s.location
	s.mu.Unlock()

	switch {
	case !authorized:
		s.fail(platform.NewError(int(models.ErrorDenied), "location access denied"))
	case loc == nil:
		s.fail(platform.NewError(int(models.ErrorLocationUnknown), "location unknown"))
	default:
		s.emit(func(d platform.Delegate) { d.DidUpdateLocations([]*platform.Location{loc}) })
	}
}

func (s *Simulator) fail(err error) {
	s.emit(func(d platform.Delegate) { d.DidFailWithError(err) })
}

func (s *Simulator) StartUpdatingLocation() {
	s.mu.Lock()
	s.activity.UpdatingLocation = true
	authorized := s.authorized()
	loc := s.location
	s.mu.Unlock()

	if !authorized {
		s.fail(platform.NewError(int(models.ErrorDenied), "location access denied"))
		return
	}
	if loc != nil {
		s.emit(func(d platform.Delegate) { d.DidUpdateLocations([]*platform.Location{loc}) })
	}
}

func (s *Simulator) StopUpdatingLocation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity.UpdatingLocation = false
	s.activity.Deferred = false
}

func (s *Simulator) StartUpdatingHeading() {
	s.mu.Lock()
	available := s.headingAvailable
	s.activity.UpdatingHeading = available
	h := s.heading
	s.mu.Unlock()

	if !available {
		s.fail(platform.NewError(int(models.ErrorHeadingFailure), "heading unavailable"))
		return
	}
	if h != nil {
		s.emit(func(d platform.Delegate) { d.DidUpdateHeading(h) })
	}
}

func (s *Simulator) StopUpdatingHeading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity.UpdatingHeading = false
}

func (s *Simulator) DismissHeadingCalibrationDisplay() {}

func (s *Simulator) StartMonitoring(region platform.Region) {
	if _, ok := region.(*platform.CircularRegion); !ok {
		err := platform.NewError(int(models.ErrorRegionMonitoringFailure), "unsupported region")
		s.emit(func(d platform.Delegate) { d.MonitoringDidFail(region, err) })
		return
	}

	s.mu.Lock()
	replaced := false
	for i, r := range s.regions {
		if r.Identifier() == region.Identifier() {
			s.regions[i] = region
			replaced = true
			break
		}
	}
	if !replaced {
		s.regions = append(s.regions, region)
	}
	s.mu.Unlock()

	s.emit(func(d platform.Delegate) { d.DidStartMonitoring(region) })
}

func (s *Simulator) StopMonitoring(region platform.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.regions[:0]
	for _, r := range s.regions {
		if r.Identifier() != region.Identifier() {
			kept = append(kept, r)
		}
	}
	s.regions = kept
	delete(s.states, region.Identifier())
}

func (s *Simulator) RequestState(region platform.Region) {
	s.mu.Lock()
	state := s.states[region.Identifier()]
	s.mu.Unlock()

	s.emit(func(d platform.Delegate) { d.DidDetermineState(state, region) })
}

func (s *Simulator) StartMonitoringSignificantLocationChanges() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity.SignificantChanges = true
}

func (s *Simulator) StopMonitoringSignificantLocationChanges() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity.SignificantChanges = false
}

func (s *Simulator) StartMonitoringVisits() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity.Visits = true
}

func (s *Simulator) StopMonitoringVisits() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity.Visits = false
}

func (s *Simulator) AllowDeferredLocationUpdates(distance float64, timeout time.Duration) {
	s.mu.Lock()
	updating := s.activity.UpdatingLocation
	s.activity.Deferred = updating
	s.mu.Unlock()

	if !updating {
		err := platform.NewError(int(models.ErrorDeferredNotUpdatingLocation), "not updating location")
		s.emit(func(d platform.Delegate) { d.DidFinishDeferredUpdates(err) })
	}
}

func (s *Simulator) DisallowDeferredLocationUpdates() {
	s.mu.Lock()
	deferred := s.activity.Deferred
	s.activity.Deferred = false
	s.mu.Unlock()

	if deferred {
		err := platform.NewError(int(models.ErrorDeferredCanceled), "deferred updates canceled")
		s.emit(func(d platform.Delegate) { d.DidFinishDeferredUpdates(err) })
	}
}

func (s *Simulator) RequestTemporaryFullAccuracyAuthorization(purposeKey string, completion func(error)) {
	s.mu.Lock()
	var err error
	switch {
	case s.accuracy == nil:
		err = platform.NewError(int(models.ErrorPromptDeclined), "accuracy authorization unavailable")
	case purposeKey == "":
		err = platform.NewError(int(models.ErrorPromptDeclined), "missing purpose key")
	default:
		full := models.AccuracyFull.Raw()
		s.accuracy = &full
	}
	s.mu.Unlock()

	if completion != nil {
		s.schedule(func() { completion(err) })
	}
}

func (s *Simulator) SetActivityType(raw int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ActivityType = raw
}

func (s *Simulator) SetAllowsBackgroundLocationUpdates(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.AllowsBackgroundLocationUpdates = v
}

func (s *Simulator) SetDesiredAccuracy(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DesiredAccuracy = v
}

func (s *Simulator) SetDistanceFilter(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DistanceFilter = v
}

func (s *Simulator) SetHeadingFilter(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.HeadingFilter = v
}

func (s *Simulator) SetHeadingOrientation(raw int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.HeadingOrientation = raw
}

func (s *Simulator) SetPausesLocationUpdatesAutomatically(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.PausesLocationUpdatesAutomatically = v
}

func (s *Simulator) SetShowsBackgroundLocationIndicator(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ShowsBackgroundLocationIndicator = v
}

// Settings returns the current configurable state.
func (s *Simulator) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Activity returns which services are running.
func (s *Simulator) Activity() Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activity
}
