package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/locationd/internal/pkg/logger"
	"github.com/piresc/locationd/internal/utils"
	"github.com/piresc/locationd/services/location"
	"github.com/piresc/locationd/services/location/live"
	"github.com/piresc/locationd/services/location/models"
	"github.com/piresc/locationd/services/location/usecase"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// AuthorizationRequest selects the authorization level to prompt for
type AuthorizationRequest struct {
	Always bool `json:"always"`
}

// RegionRequest describes a circular region to monitor
type RegionRequest struct {
	Identifier    string            `json:"identifier"`
	Center        models.Coordinate `json:"center"`
	Radius        float64           `json:"radius"`
	NotifyOnEntry *bool             `json:"notify_on_entry,omitempty"`
	NotifyOnExit  *bool             `json:"notify_on_exit,omitempty"`
}

// Region converts the request, notifying on entry and exit unless told otherwise
func (r RegionRequest) Region() models.Region {
	region := models.NewCircularRegion(r.Identifier, r.Center, r.Radius)
	if r.NotifyOnEntry != nil {
		region.NotifyOnEntry = *r.NotifyOnEntry
	}
	if r.NotifyOnExit != nil {
		region.NotifyOnExit = *r.NotifyOnExit
	}
	return region
}

// GetStatus returns the current location service status
func (h *LocationHandler) GetStatus(c echo.Context) error {
	status, err := h.locationUC.Status(c.Request().Context())
	if err != nil {
		return h.fail(c, "Failed to get location status", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", status)
}

// RequestAuthorization prompts the user for location access
func (h *LocationHandler) RequestAuthorization(c echo.Context) error {
	var req AuthorizationRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.locationUC.RequestAuthorization(c.Request().Context(), req.Always); err != nil {
		return h.fail(c, "Failed to request authorization", err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Authorization requested", nil)
}

// RefreshLocation requests a single location fix
func (h *LocationHandler) RefreshLocation(c echo.Context) error {
	if err := h.locationUC.RefreshLocation(c.Request().Context()); err != nil {
		return h.fail(c, "Failed to request location", err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Location requested", nil)
}

// StartTracking starts continuous location updates
func (h *LocationHandler) StartTracking(c echo.Context) error {
	if err := h.locationUC.StartTracking(c.Request().Context()); err != nil {
		return h.fail(c, "Failed to start tracking", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tracking started", nil)
}

// StopTracking stops continuous location updates
func (h *LocationHandler) StopTracking(c echo.Context) error {
	if err := h.locationUC.StopTracking(c.Request().Context()); err != nil {
		return h.fail(c, "Failed to stop tracking", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tracking stopped", nil)
}

// MonitorRegion starts monitoring a circular region
func (h *LocationHandler) MonitorRegion(c echo.Context) error {
	var req RegionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	region := req.Region()
	if err := h.locationUC.MonitorRegion(c.Request().Context(), region); err != nil {
		return h.fail(c, "Failed to monitor region", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Region monitoring started", region)
}

// StopMonitoringRegion stops monitoring the region named in the path
func (h *LocationHandler) StopMonitoringRegion(c echo.Context) error {
	identifier := c.Param("id")
	if identifier == "" {
		return utils.BadRequestResponse(c, "region id is required")
	}

	if err := h.locationUC.StopMonitoringRegion(c.Request().Context(), identifier); err != nil {
		return h.fail(c, "Failed to stop monitoring region", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Region monitoring stopped", nil)
}

// Configure applies a partial service configuration
func (h *LocationHandler) Configure(c echo.Context) error {
	var cfg models.ServiceConfiguration
	if err := c.Bind(&cfg); err != nil {
		logger.Warn("Failed to bind request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if cfg.IsEmpty() {
		return utils.BadRequestResponse(c, "configuration is empty")
	}

	if err := h.locationUC.Configure(c.Request().Context(), cfg); err != nil {
		return h.fail(c, "Failed to configure location service", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Configuration applied", cfg)
}

// fail maps use case errors to HTTP responses
func (h *LocationHandler) fail(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRegion), errors.Is(err, live.ErrRegionNotReconstructable):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, usecase.ErrNotAuthorized):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, usecase.ErrRegionNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, usecase.ErrServicesDisabled), errors.Is(err, live.ErrClosed):
		return utils.ServiceUnavailableResponse(c, err.Error())
	}

	logger.Error(msg, logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
