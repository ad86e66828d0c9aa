// Package live adapts a platform.Manager to location.Client.
//
// The manager is created lazily by the first call and is only ever touched
// from one goroutine owned by the client. Every operation is sent to that
// goroutine as a job and the caller waits for it to finish.
package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/locationd/internal/pkg/logger"
	location "github.com/piresc/locationd/services/location"
	"github.com/piresc/locationd/services/location/bridge"
	"github.com/piresc/locationd/services/location/models"
	"github.com/piresc/locationd/services/location/platform"
)

var (
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("location client is closed")
	// ErrRegionNotReconstructable is returned when a region cannot be
	// handed back to the platform.
	ErrRegionNotReconstructable = errors.New("region cannot be converted to a platform region")
)

// Factory creates the platform manager. It runs exactly once, on the
// client's executor goroutine.
type Factory func() (platform.Manager, error)

// Client is the live location.Client.
type Client struct {
	factory Factory
	bridge  *bridge.Bridge

	start   sync.Once
	ready   chan struct{}
	initErr error

	jobs      chan func(platform.Manager)
	done      chan struct{}
	closeOnce sync.Once
}

var _ location.Client = (*Client)(nil)

// New returns a client that will build its manager with factory on first
// use.
func New(factory Factory) *Client {
	return &Client{
		factory: factory,
		bridge:  bridge.New(),
		ready:   make(chan struct{}),
		jobs:    make(chan func(platform.Manager)),
		done:    make(chan struct{}),
	}
}

// run owns the manager for the lifetime of the client.
func (c *Client) run() {
	m, err := c.factory()
	if err != nil {
		c.initErr = fmt.Errorf("failed to create location manager: %w", err)
		logger.Error("Location manager construction failed", logger.Err(err))
		close(c.ready)
		return
	}
	if m == nil {
		c.initErr = errors.New("failed to create location manager: factory returned nil")
		logger.Error("Location manager construction failed", logger.Err(c.initErr))
		close(c.ready)
		return
	}

	m.SetDelegate(c.bridge)
	logger.Info("Location manager created")
	close(c.ready)

	for {
		select {
		case job := <-c.jobs:
			job(m)
		case <-c.done:
			return
		}
	}
}

// await starts the executor on first use and waits for the manager.
func (c *Client) await(ctx context.Context) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	c.start.Do(func() { go c.run() })

	select {
	case <-c.ready:
		return c.initErr
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// perform runs fn on the executor and waits for it to return.
func (c *Client) perform(ctx context.Context, fn func(platform.Manager)) error {
	if err := c.await(ctx); err != nil {
		return err
	}

	finished := make(chan struct{})
	job := func(m platform.Manager) {
		defer close(finished)
		fn(m)
	}

	select {
	case c.jobs <- job:
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// query runs fn on the executor. The result travels over a buffered channel
// so a job still running after ctx is done never shares memory with the caller.
func query[T any](ctx context.Context, c *Client, fn func(platform.Manager) T) (T, error) {
	result := make(chan T, 1)
	if err := c.perform(ctx, func(m platform.Manager) { result <- fn(m) }); err != nil {
		var zero T
		return zero, err
	}
	return <-result, nil
}

// Close stops the executor and ends every event subscription.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.bridge.Close()
		logger.Info("Location client closed")
	})
}

func (c *Client) AuthorizationStatus(ctx context.Context) (models.AuthorizationStatus, error) {
	raw, err := query(ctx, c, platform.Manager.AuthorizationStatus)
	if err != nil {
		return models.AuthorizationNotDetermined, err
	}
	status, ok := models.AuthorizationStatusFromRaw(raw)
	if !ok {
		return models.AuthorizationNotDetermined, fmt.Errorf("unknown authorization status %d", raw)
	}
	return status, nil
}

func (c *Client) AccuracyAuthorization(ctx context.Context) (*models.AccuracyAuthorization, error) {
	return query(ctx, c, func(m platform.Manager) *models.AccuracyAuthorization {
		raw, ok := m.AccuracyAuthorization()
		if !ok {
			return nil
		}
		a, ok := models.AccuracyAuthorizationFromRaw(raw)
		if !ok {
			return nil
		}
		return &a
	})
}

func (c *Client) LocationServicesEnabled(ctx context.Context) (bool, error) {
	return query(ctx, c, platform.Manager.LocationServicesEnabled)
}

func (c *Client) HeadingAvailable(ctx context.Context) (bool, error) {
	return query(ctx, c, platform.Manager.HeadingAvailable)
}

func (c *Client) IsRangingAvailable(ctx context.Context) (bool, error) {
	return query(ctx, c, platform.Manager.IsRangingAvailable)
}

func (c *Client) SignificantLocationChangeMonitoringAvailable(ctx context.Context) (bool, error) {
	return query(ctx, c, platform.Manager.SignificantLocationChangeMonitoringAvailable)
}

func (c *Client) Heading(ctx context.Context) (*models.Heading, error) {
	return query(ctx, c, func(m platform.Manager) *models.Heading {
		h := m.Heading()
		if h == nil {
			return nil
		}
		heading := models.NewHeading(h)
		return &heading
	})
}

func (c *Client) Location(ctx context.Context) (*models.Location, error) {
	return query(ctx, c, func(m platform.Manager) *models.Location {
		l := m.Location()
		if l == nil {
			return nil
		}
		loc := models.NewLocation(l)
		return &loc
	})
}

func (c *Client) MonitoredRegions(ctx context.Context) ([]models.Region, error) {
	return query(ctx, c, func(m platform.Manager) []models.Region {
		raw := m.MonitoredRegions()
		regions := make([]models.Region, 0, len(raw))
		for _, r := range raw {
			if r != nil {
				regions = append(regions, models.NewRegion(r))
			}
		}
		return models.RegionSet(regions)
	})
}

func (c *Client) MaximumRegionMonitoringDistance(ctx context.Context) (float64, error) {
	return query(ctx, c, platform.Manager.MaximumRegionMonitoringDistance)
}

func (c *Client) RequestAlwaysAuthorization(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.RequestAlwaysAuthorization)
}

func (c *Client) RequestWhenInUseAuthorization(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.RequestWhenInUseAuthorization)
}

func (c *Client) RequestLocation(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.RequestLocation)
}

func (c *Client) StartUpdatingLocation(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.StartUpdatingLocation)
}

func (c *Client) StopUpdatingLocation(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.StopUpdatingLocation)
}

func (c *Client) StartUpdatingHeading(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.StartUpdatingHeading)
}

func (c *Client) StopUpdatingHeading(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.StopUpdatingHeading)
}

func (c *Client) DismissHeadingCalibrationDisplay(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.DismissHeadingCalibrationDisplay)
}

// platformRegion converts region or reports why it cannot be monitored.
func platformRegion(region models.Region) (platform.Region, error) {
	r, ok := region.Platform()
	if !ok {
		return nil, fmt.Errorf("%w: %s region %q", ErrRegionNotReconstructable, region.Kind, region.Identifier)
	}
	return r, nil
}

func (c *Client) StartMonitoringForRegion(ctx context.Context, region models.Region) error {
	r, err := platformRegion(region)
	if err != nil {
		return err
	}
	return c.perform(ctx, func(m platform.Manager) { m.StartMonitoring(r) })
}

func (c *Client) StopMonitoringForRegion(ctx context.Context, region models.Region) error {
	r, err := platformRegion(region)
	if err != nil {
		return err
	}
	return c.perform(ctx, func(m platform.Manager) { m.StopMonitoring(r) })
}

func (c *Client) RequestState(ctx context.Context, region models.Region) error {
	r, err := platformRegion(region)
	if err != nil {
		return err
	}
	return c.perform(ctx, func(m platform.Manager) { m.RequestState(r) })
}

func (c *Client) StartMonitoringSignificantLocationChanges(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.StartMonitoringSignificantLocationChanges)
}

func (c *Client) StopMonitoringSignificantLocationChanges(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.StopMonitoringSignificantLocationChanges)
}

func (c *Client) StartMonitoringVisits(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.StartMonitoringVisits)
}

func (c *Client) StopMonitoringVisits(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.StopMonitoringVisits)
}

func (c *Client) AllowDeferredLocationUpdates(ctx context.Context, distance float64, timeout time.Duration) error {
	return c.perform(ctx, func(m platform.Manager) { m.AllowDeferredLocationUpdates(distance, timeout) })
}

func (c *Client) DisallowDeferredLocationUpdates(ctx context.Context) error {
	return c.perform(ctx, platform.Manager.DisallowDeferredLocationUpdates)
}

// RequestTemporaryFullAccuracyAuthorization waits for the platform's
// completion and returns its error as a models.Error.
func (c *Client) RequestTemporaryFullAccuracyAuthorization(ctx context.Context, purposeKey string) error {
	result := make(chan error, 1)
	err := c.perform(ctx, func(m platform.Manager) {
		m.RequestTemporaryFullAccuracyAuthorization(purposeKey, func(err error) { result <- err })
	})
	if err != nil {
		return err
	}

	select {
	case err := <-result:
		if err != nil {
			return models.NewError(err)
		}
		return nil
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Set applies every non-nil field of cfg in a single job.
func (c *Client) Set(ctx context.Context, cfg models.ServiceConfiguration) error {
	if cfg.IsEmpty() {
		return c.await(ctx)
	}
	return c.perform(ctx, func(m platform.Manager) {
		if cfg.ActivityType != nil {
			m.SetActivityType(cfg.ActivityType.Raw())
		}
		if cfg.AllowsBackgroundLocationUpdates != nil {
			m.SetAllowsBackgroundLocationUpdates(*cfg.AllowsBackgroundLocationUpdates)
		}
		if cfg.DesiredAccuracy != nil {
			m.SetDesiredAccuracy(*cfg.DesiredAccuracy)
		}
		if cfg.DistanceFilter != nil {
			m.SetDistanceFilter(*cfg.DistanceFilter)
		}
		if cfg.HeadingFilter != nil {
			m.SetHeadingFilter(*cfg.HeadingFilter)
		}
		if cfg.HeadingOrientation != nil {
			m.SetHeadingOrientation(cfg.HeadingOrientation.Raw())
		}
		if cfg.PausesLocationUpdatesAutomatically != nil {
			m.SetPausesLocationUpdatesAutomatically(*cfg.PausesLocationUpdatesAutomatically)
		}
		if cfg.ShowsBackgroundLocationIndicator != nil {
			m.SetShowsBackgroundLocationIndicator(*cfg.ShowsBackgroundLocationIndicator)
		}
	})
}

// Events subscribes to every action raised after it returns.
func (c *Client) Events(ctx context.Context) (<-chan models.Action, error) {
	if err := c.await(ctx); err != nil {
		return nil, err
	}
	return c.bridge.Subscribe(ctx), nil
}

// Subscribers reports the number of open event subscriptions.
func (c *Client) Subscribers() int {
	return c.bridge.Len()
}
