// Package failing provides a location.Client whose every operation fails.
//
// Install it as the test client so that code under test which reaches for
// location services without substituting its own client fails loudly.
package failing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/locationd/internal/pkg/logger"
	location "github.com/piresc/locationd/services/location"
	"github.com/piresc/locationd/services/location/models"
)

// ErrUnimplemented is wrapped by every error the client returns.
var ErrUnimplemented = errors.New("unimplemented")

// Client fails every call.
type Client struct {
	report func(method string)
}

var _ location.Client = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithReporter calls report with the method name on every call, e.g. to
// fail the running test.
func WithReporter(report func(method string)) Option {
	return func(c *Client) { c.report = report }
}

func New(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) fail(method string) error {
	err := fmt.Errorf("location.Client.%s: %w", method, ErrUnimplemented)
	logger.Error("Unimplemented location client call", logger.String("method", method))
	if c.report != nil {
		c.report(method)
	}
	return err
}

func (c *Client) AuthorizationStatus(context.Context) (models.AuthorizationStatus, error) {
	return models.AuthorizationNotDetermined, c.fail("AuthorizationStatus")
}

func (c *Client) AccuracyAuthorization(context.Context) (*models.AccuracyAuthorization, error) {
	return nil, c.fail("AccuracyAuthorization")
}

func (c *Client) LocationServicesEnabled(context.Context) (bool, error) {
	return false, c.fail("LocationServicesEnabled")
}

func (c *Client) HeadingAvailable(context.Context) (bool, error) {
	return false, c.fail("HeadingAvailable")
}

func (c *Client) IsRangingAvailable(context.Context) (bool, error) {
	return false, c.fail("IsRangingAvailable")
}

func (c *Client) SignificantLocationChangeMonitoringAvailable(context.Context) (bool, error) {
	return false, c.fail("SignificantLocationChangeMonitoringAvailable")
}

func (c *Client) Heading(context.Context) (*models.Heading, error) {
	return nil, c.fail("Heading")
}

func (c *Client) Location(context.Context) (*models.Location, error) {
	return nil, c.fail("Location")
}

func (c *Client) MonitoredRegions(context.Context) ([]models.Region, error) {
	return nil, c.fail("MonitoredRegions")
}

func (c *Client) MaximumRegionMonitoringDistance(context.Context) (float64, error) {
	return 0, c.fail("MaximumRegionMonitoringDistance")
}

func (c *Client) RequestAlwaysAuthorization(context.Context) error {
	return c.fail("RequestAlwaysAuthorization")
}

func (c *Client) RequestWhenInUseAuthorization(context.Context) error {
	return c.fail("RequestWhenInUseAuthorization")
}

func (c *Client) RequestLocation(context.Context) error {
	return c.fail("RequestLocation")
}

func (c *Client) StartUpdatingLocation(context.Context) error {
	return c.fail("StartUpdatingLocation")
}

func (c *Client) StopUpdatingLocation(context.Context) error {
	return c.fail("StopUpdatingLocation")
}

func (c *Client) StartUpdatingHeading(context.Context) error {
	return c.fail("StartUpdatingHeading")
}

func (c *Client) StopUpdatingHeading(context.Context) error {
	return c.fail("StopUpdatingHeading")
}

func (c *Client) DismissHeadingCalibrationDisplay(context.Context) error {
	return c.fail("DismissHeadingCalibrationDisplay")
}

func (c *Client) StartMonitoringForRegion(context.Context, models.Region) error {
	return c.fail("StartMonitoringForRegion")
}

func (c *Client) StopMonitoringForRegion(context.Context, models.Region) error {
	return c.fail("StopMonitoringForRegion")
}

func (c *Client) RequestState(context.Context, models.Region) error {
	return c.fail("RequestState")
}

func (c *Client) StartMonitoringSignificantLocationChanges(context.Context) error {
	return c.fail("StartMonitoringSignificantLocationChanges")
}

func (c *Client) StopMonitoringSignificantLocationChanges(context.Context) error {
	return c.fail("StopMonitoringSignificantLocationChanges")
}

func (c *Client) StartMonitoringVisits(context.Context) error {
	return c.fail("StartMonitoringVisits")
}

func (c *Client) StopMonitoringVisits(context.Context) error {
	return c.fail("StopMonitoringVisits")
}

func (c *Client) AllowDeferredLocationUpdates(context.Context, float64, time.Duration) error {
	return c.fail("AllowDeferredLocationUpdates")
}

func (c *Client) DisallowDeferredLocationUpdates(context.Context) error {
	return c.fail("DisallowDeferredLocationUpdates")
}

func (c *Client) RequestTemporaryFullAccuracyAuthorization(context.Context, string) error {
	return c.fail("RequestTemporaryFullAccuracyAuthorization")
}

func (c *Client) Set(context.Context, models.ServiceConfiguration) error {
	return c.fail("Set")
}

func (c *Client) Events(context.Context) (<-chan models.Action, error) {
	return nil, c.fail("Events")
}
