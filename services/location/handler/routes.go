package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/locationd/services/location"
	httpHandler "github.com/piresc/locationd/services/location/handler/http"
)

// HTTPHandler combines all handlers for the location service
type HTTPHandler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(locationUC location.LocationUC) *HTTPHandler {
	return &HTTPHandler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1/location")

	v1.GET("/status", h.locationHTTP.GetStatus)
	v1.POST("/authorization", h.locationHTTP.RequestAuthorization)
	v1.POST("/refresh", h.locationHTTP.RefreshLocation)

	v1.POST("/tracking/start", h.locationHTTP.StartTracking)
	v1.POST("/tracking/stop", h.locationHTTP.StopTracking)

	v1.POST("/regions", h.locationHTTP.MonitorRegion)
	v1.DELETE("/regions/:id", h.locationHTTP.StopMonitoringRegion)

	v1.PUT("/configuration", h.locationHTTP.Configure)
}
