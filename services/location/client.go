package location

import (
	"context"
	"time"

	"github.com/piresc/locationd/services/location/models"
)

// Client is the location service as seen by the rest of the application.
// Every method may suspend until the underlying manager is reachable.
type Client interface {
	AuthorizationStatus(ctx context.Context) (models.AuthorizationStatus, error)
	// AccuracyAuthorization returns nil when the platform has no accuracy
	// authorization.
	AccuracyAuthorization(ctx context.Context) (*models.AccuracyAuthorization, error)
	LocationServicesEnabled(ctx context.Context) (bool, error)
	HeadingAvailable(ctx context.Context) (bool, error)
	IsRangingAvailable(ctx context.Context) (bool, error)
	SignificantLocationChangeMonitoringAvailable(ctx context.Context) (bool, error)
	// Heading and Location return nil until the platform has a sample.
	Heading(ctx context.Context) (*models.Heading, error)
	Location(ctx context.Context) (*models.Location, error)
	MonitoredRegions(ctx context.Context) ([]models.Region, error)
	MaximumRegionMonitoringDistance(ctx context.Context) (float64, error)

	RequestAlwaysAuthorization(ctx context.Context) error
	RequestWhenInUseAuthorization(ctx context.Context) error
	RequestLocation(ctx context.Context) error
	StartUpdatingLocation(ctx context.Context) error
	StopUpdatingLocation(ctx context.Context) error
	StartUpdatingHeading(ctx context.Context) error
	StopUpdatingHeading(ctx context.Context) error
	DismissHeadingCalibrationDisplay(ctx context.Context) error
	StartMonitoringForRegion(ctx context.Context, region models.Region) error
	StopMonitoringForRegion(ctx context.Context, region models.Region) error
	RequestState(ctx context.Context, region models.Region) error
	StartMonitoringSignificantLocationChanges(ctx context.Context) error
	StopMonitoringSignificantLocationChanges(ctx context.Context) error
	StartMonitoringVisits(ctx context.Context) error
	StopMonitoringVisits(ctx context.Context) error
	AllowDeferredLocationUpdates(ctx context.Context, distance float64, timeout time.Duration) error
	DisallowDeferredLocationUpdates(ctx context.Context) error
	RequestTemporaryFullAccuracyAuthorization(ctx context.Context, purposeKey string) error

	// Set applies the non-nil fields of cfg and leaves the rest untouched.
	Set(ctx context.Context, cfg models.ServiceConfiguration) error

	// Events opens a new subscription to every action raised from now on.
	// The channel is closed once ctx is done; cancelling one subscription
	// does not affect any other.
	Events(ctx context.Context) (<-chan models.Action, error)
}

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/locationd/services/location ActionGW

// ActionGW defines the interface for publishing actions to other services
type ActionGW interface {
	PublishAction(ctx context.Context, deviceID string, action models.Action) error
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/locationd/services/location SnapshotRepo

// SnapshotRepo defines the interface for persisting the latest known state of a device
type SnapshotRepo interface {
	SaveLocation(ctx context.Context, deviceID string, loc models.Location) error
	GetLocation(ctx context.Context, deviceID string) (*models.Location, error)
	SaveAuthorization(ctx context.Context, deviceID string, status models.AuthorizationStatus) error
	GetAuthorization(ctx context.Context, deviceID string) (*models.AuthorizationStatus, error)
	SaveRegions(ctx context.Context, deviceID string, regions []models.Region) error
	GetRegions(ctx context.Context, deviceID string) ([]models.Region, error)
}

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/locationd/services/location LocationUC

// LocationUC defines the interface for the daemon's location use cases
type LocationUC interface {
	// Run relays every action to the gateway and snapshot store until ctx is done
	Run(ctx context.Context) error
	Status(ctx context.Context) (*models.Status, error)
	RequestAuthorization(ctx context.Context, always bool) error
	RefreshLocation(ctx context.Context) error
	StartTracking(ctx context.Context) error
	StopTracking(ctx context.Context) error
	MonitorRegion(ctx context.Context, region models.Region) error
	StopMonitoringRegion(ctx context.Context, identifier string) error
	Configure(ctx context.Context, cfg models.ServiceConfiguration) error
}
