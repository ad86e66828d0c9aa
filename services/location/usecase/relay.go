package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/golang/geo/s2"
	"github.com/piresc/locationd/internal/pkg/logger"
	"github.com/piresc/locationd/internal/pkg/retry"
	"github.com/piresc/locationd/services/location"
	"github.com/piresc/locationd/services/location/models"
)

var (
	// ErrNotAuthorized is returned when tracking is requested without location permission
	ErrNotAuthorized = errors.New("location access is not authorized")
	// ErrServicesDisabled is returned when location services are switched off device-wide
	ErrServicesDisabled = errors.New("location services are disabled")
	// ErrInvalidRegion is returned for regions that cannot be monitored
	ErrInvalidRegion = errors.New("invalid region")
	// ErrRegionNotFound is returned when no monitored region has the identifier
	ErrRegionNotFound = errors.New("region is not monitored")
	// ErrEventStreamClosed is returned by Run when the client stops delivering actions
	ErrEventStreamClosed = errors.New("location event stream closed")
)

// LocationUC implements location.LocationUC on top of a location.Client
type LocationUC struct {
	client   location.Client
	gw       location.ActionGW
	repo     location.SnapshotRepo
	deviceID string
	retrier  *retry.Retrier
}

// Option configures a LocationUC
type Option func(*LocationUC)

// WithRetrier sets the retry policy for snapshot writes
func WithRetrier(r *retry.Retrier) Option {
	return func(uc *LocationUC) {
		uc.retrier = r
	}
}

// NewLocationUC creates a new location use case for one device
func NewLocationUC(client location.Client, gw location.ActionGW, repo location.SnapshotRepo, deviceID string, opts ...Option) *LocationUC {
	uc := &LocationUC{
		client:   client,
		gw:       gw,
		repo:     repo,
		deviceID: deviceID,
		retrier:  retry.New(retry.Config{MaxRetries: 0}),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ location.LocationUC = (*LocationUC)(nil)

// Run subscribes to the client's actions and relays each one until ctx is
// done. Relay failures are logged and do not stop the loop.
func (uc *LocationUC) Run(ctx context.Context) error {
	events, err := uc.client.Events(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to location events: %w", err)
	}

	logger.Info("Location relay started", logger.String("device_id", uc.deviceID))
	for action := range events {
		uc.relay(ctx, action)
	}

	if ctx.Err() != nil {
		logger.Info("Location relay stopped", logger.String("device_id", uc.deviceID))
		return nil
	}
	return ErrEventStreamClosed
}

func (uc *LocationUC) relay(ctx context.Context, action models.Action) {
	if err := uc.gw.PublishAction(ctx, uc.deviceID, action); err != nil {
		logger.Warn("Failed to publish location action",
			logger.String("device_id", uc.deviceID),
			logger.String("action", string(action.ActionType())),
			logger.Err(err))
	}

	err := uc.retrier.Execute(ctx, "store location snapshot", func(ctx context.Context) error {
		return uc.persist(ctx, action)
	})
	if err != nil {
		logger.Warn("Failed to store location snapshot",
			logger.String("device_id", uc.deviceID),
			logger.String("action", string(action.ActionType())),
			logger.Err(err))
	}
}

// persist records the parts of an action that make up the device snapshot
func (uc *LocationUC) persist(ctx context.Context, action models.Action) error {
	switch a := action.(type) {
	case models.DidUpdateLocations:
		if len(a.Locations) == 0 {
			return nil
		}
		return uc.repo.SaveLocation(ctx, uc.deviceID, a.Locations[len(a.Locations)-1])
	case models.DidChangeAuthorization:
		return uc.repo.SaveAuthorization(ctx, uc.deviceID, a.Status)
	case models.DidStartMonitoring:
		return uc.syncRegions(ctx)
	case models.MonitoringDidFail:
		logger.Warn("Region monitoring failed",
			logger.String("device_id", uc.deviceID),
			logger.Err(a.Error))
		return uc.syncRegions(ctx)
	case models.DidFailWithError:
		logger.Warn("Location service failure",
			logger.String("device_id", uc.deviceID),
			logger.Err(a.Error))
	}
	return nil
}

func (uc *LocationUC) syncRegions(ctx context.Context) error {
	regions, err := uc.client.MonitoredRegions(ctx)
	if err != nil {
		return err
	}
	return uc.repo.SaveRegions(ctx, uc.deviceID, regions)
}

// Status reads the current state of the location service. When the
// service has no fix yet, the last stored fix is returned instead.
func (uc *LocationUC) Status(ctx context.Context) (*models.Status, error) {
	var (
		status models.Status
		err    error
	)

	if status.AuthorizationStatus, err = uc.client.AuthorizationStatus(ctx); err != nil {
		return nil, err
	}
	if status.AccuracyAuthorization, err = uc.client.AccuracyAuthorization(ctx); err != nil {
		return nil, err
	}
	if status.LocationServicesEnabled, err = uc.client.LocationServicesEnabled(ctx); err != nil {
		return nil, err
	}
	if status.HeadingAvailable, err = uc.client.HeadingAvailable(ctx); err != nil {
		return nil, err
	}
	if status.MonitoredRegions, err = uc.client.MonitoredRegions(ctx); err != nil {
		return nil, err
	}
	if status.Location, err = uc.client.Location(ctx); err != nil {
		return nil, err
	}

	if status.Location == nil {
		stored, err := uc.repo.GetLocation(ctx, uc.deviceID)
		if err != nil {
			logger.Warn("Failed to read stored location",
				logger.String("device_id", uc.deviceID),
				logger.Err(err))
		}
		status.Location = stored
	}
	return &status, nil
}

// RequestAuthorization prompts for always or when-in-use authorization
func (uc *LocationUC) RequestAuthorization(ctx context.Context, always bool) error {
	if always {
		return uc.client.RequestAlwaysAuthorization(ctx)
	}
	return uc.client.RequestWhenInUseAuthorization(ctx)
}

// RefreshLocation asks for a single fix
func (uc *LocationUC) RefreshLocation(ctx context.Context) error {
	if err := uc.checkAuthorized(ctx); err != nil {
		return err
	}
	return uc.client.RequestLocation(ctx)
}

// StartTracking starts continuous location updates, prompting for
// when-in-use authorization if the user has not been asked yet.
func (uc *LocationUC) StartTracking(ctx context.Context) error {
	status, err := uc.client.AuthorizationStatus(ctx)
	if err != nil {
		return err
	}
	if status == models.AuthorizationNotDetermined {
		if err := uc.client.RequestWhenInUseAuthorization(ctx); err != nil {
			return err
		}
	} else if err := uc.checkAuthorized(ctx); err != nil {
		return err
	}

	return uc.client.StartUpdatingLocation(ctx)
}

func (uc *LocationUC) checkAuthorized(ctx context.Context) error {
	enabled, err := uc.client.LocationServicesEnabled(ctx)
	if err != nil {
		return err
	}
	if !enabled {
		return ErrServicesDisabled
	}

	status, err := uc.client.AuthorizationStatus(ctx)
	if err != nil {
		return err
	}
	if !status.IsAuthorized() {
		return fmt.Errorf("%w: %s", ErrNotAuthorized, status)
	}
	return nil
}

func (uc *LocationUC) StopTracking(ctx context.Context) error {
	return uc.client.StopUpdatingLocation(ctx)
}

// MonitorRegion starts monitoring a circular region and asks for its
// current state
func (uc *LocationUC) MonitorRegion(ctx context.Context, region models.Region) error {
	if err := validateRegion(region); err != nil {
		return err
	}
	if err := uc.client.StartMonitoringForRegion(ctx, region); err != nil {
		return err
	}
	return uc.client.RequestState(ctx, region)
}

// StopMonitoringRegion stops monitoring the region with the identifier
func (uc *LocationUC) StopMonitoringRegion(ctx context.Context, identifier string) error {
	regions, err := uc.client.MonitoredRegions(ctx)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(regions, func(r models.Region) bool { return r.Identifier == identifier })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRegionNotFound, identifier)
	}
	if err := uc.client.StopMonitoringForRegion(ctx, regions[idx]); err != nil {
		return err
	}
	return uc.syncRegions(ctx)
}

func (uc *LocationUC) Configure(ctx context.Context, cfg models.ServiceConfiguration) error {
	return uc.client.Set(ctx, cfg)
}

func validateRegion(region models.Region) error {
	if region.Identifier == "" {
		return fmt.Errorf("%w: identifier is required", ErrInvalidRegion)
	}
	if region.Kind != models.RegionCircular {
		return fmt.Errorf("%w: only circular regions can be monitored", ErrInvalidRegion)
	}
	if region.Center == nil || region.Radius == nil || *region.Radius <= 0 {
		return fmt.Errorf("%w: center and a positive radius are required", ErrInvalidRegion)
	}
	if !s2.LatLngFromDegrees(region.Center.Latitude, region.Center.Longitude).IsValid() {
		return fmt.Errorf("%w: center is out of range", ErrInvalidRegion)
	}
	return nil
}
