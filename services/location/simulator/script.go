package simulator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/piresc/locationd/internal/pkg/logger"
	"github.com/piresc/locationd/services/location/models"
	"github.com/piresc/locationd/services/location/platform"
)

// SetAuthorization changes the authorization status as if the user had
// edited it in system settings.
func (s *Simulator) SetAuthorization(status models.AuthorizationStatus) {
	raw := status.Raw()
	s.mu.Lock()
	changed := s.authorization != raw
	s.authorization = raw
	s.mu.Unlock()

	if changed {
		s.emit(func(d platform.Delegate) { d.DidChangeAuthorization(raw) })
	}
}

// SetRegionState sets the state reported by RequestState for a region.
func (s *Simulator) SetRegionState(identifier string, state models.RegionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[identifier] = int(state)
}

// EmitLocations records the last fix and reports every fix in order.
func (s *Simulator) EmitLocations(locations ...*platform.Location) {
	if len(locations) == 0 {
		return
	}
	s.mu.Lock()
	s.location = locations[len(locations)-1]
	s.mu.Unlock()

	s.emit(func(d platform.Delegate) { d.DidUpdateLocations(locations) })
}

// EmitHeading records and reports a heading sample.
func (s *Simulator) EmitHeading(h *platform.Heading) {
	s.mu.Lock()
	s.heading = h
	s.mu.Unlock()

	s.emit(func(d platform.Delegate) { d.DidUpdateHeading(h) })
}

// EmitEnter reports a region boundary crossing into region.
func (s *Simulator) EmitEnter(region platform.Region) {
	s.SetRegionState(region.Identifier(), models.RegionStateInside)
	s.emit(func(d platform.Delegate) { d.DidEnterRegion(region) })
}

// EmitExit reports a region boundary crossing out of region.
func (s *Simulator) EmitExit(region platform.Region) {
	s.SetRegionState(region.Identifier(), models.RegionStateOutside)
	s.emit(func(d platform.Delegate) { d.DidExitRegion(region) })
}

func (s *Simulator) EmitVisit(v *platform.Visit) {
	s.emit(func(d platform.Delegate) { d.DidVisit(v) })
}

func (s *Simulator) EmitFailure(err error) {
	s.fail(err)
}

func (s *Simulator) EmitPause() {
	s.emit(func(d platform.Delegate) { d.DidPauseLocationUpdates() })
}

func (s *Simulator) EmitResume() {
	s.emit(func(d platform.Delegate) { d.DidResumeLocationUpdates() })
}

// Waypoint is one fix of a recorded route.
type Waypoint struct {
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	Altitude           float64  `json:"altitude"`
	Course             float64  `json:"course"`
	CourseAccuracy     *float64 `json:"course_accuracy,omitempty"`
	Speed              float64  `json:"speed"`
	SpeedAccuracy      *float64 `json:"speed_accuracy,omitempty"`
	HorizontalAccuracy float64  `json:"horizontal_accuracy"`
	VerticalAccuracy   float64  `json:"vertical_accuracy"`
}

// Route is an ordered list of waypoints.
type Route []Waypoint

// LoadRoute decodes a JSON array of waypoints.
func LoadRoute(r io.Reader) (Route, error) {
	var route Route
	if err := json.NewDecoder(r).Decode(&route); err != nil {
		return nil, fmt.Errorf("failed to decode route: %w", err)
	}
	if len(route) == 0 {
		return nil, fmt.Errorf("route has no waypoints")
	}
	return route, nil
}

// Fix converts w into a platform fix taken at ts.
func (w Waypoint) Fix(ts time.Time) *platform.Location {
	loc := &platform.Location{
		Coordinate:         platform.Coordinate2D{Latitude: w.Latitude, Longitude: w.Longitude},
		Altitude:           w.Altitude,
		Course:             w.Course,
		HorizontalAccuracy: w.HorizontalAccuracy,
		Speed:              w.Speed,
		Timestamp:          ts,
		VerticalAccuracy:   w.VerticalAccuracy,
	}
	if w.CourseAccuracy != nil {
		loc.CourseAccuracy = *w.CourseAccuracy
		loc.Supports |= platform.FieldCourseAccuracy
	}
	if w.SpeedAccuracy != nil {
		loc.SpeedAccuracy = *w.SpeedAccuracy
		loc.Supports |= platform.FieldSpeedAccuracy
	}
	return loc
}

// Play walks route, one waypoint per interval. Each waypoint becomes the
// last known location; it is reported only while location updates are
// running. Play returns nil at the end of the route or ctx's error.
func (s *Simulator) Play(ctx context.Context, route Route, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i, w := range route {
		if i > 0 {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		fix := w.Fix(time.Now())
		s.mu.Lock()
		s.location = fix
		updating := s.activity.UpdatingLocation && s.authorized()
		s.mu.Unlock()

		if updating {
			s.emit(func(d platform.Delegate) { d.DidUpdateLocations([]*platform.Location{fix}) })
		}
	}

	logger.Debug("Route replay finished", logger.Int("waypoints", len(route)))
	return nil
}

// Replay plays route in a loop until ctx is done, waiting interval between
// the last waypoint of one lap and the first of the next.
func (s *Simulator) Replay(ctx context.Context, route Route, interval time.Duration) error {
	if len(route) == 0 {
		return errors.New("route has no waypoints")
	}
	if interval <= 0 {
		return fmt.Errorf("invalid replay interval %s", interval)
	}

	for {
		if err := s.Play(ctx, route, interval); err != nil {
			return err
		}

		timer := time.NewTimer(interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}
