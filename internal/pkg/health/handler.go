package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// PingResponse identifies the running daemon
type PingResponse struct {
	Service    string    `json:"service"`
	Version    string    `json:"version"`
	GoVersion  string    `json:"go_version"`
	Hostname   string    `json:"hostname"`
	StartedAt  time.Time `json:"started_at"`
	ServerTime time.Time `json:"server_time"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if version == "" {
		version = "development"
	}
	started := time.Now()

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, PingResponse{
			Service:    serviceName,
			Version:    version,
			GoVersion:  runtime.Version(),
			Hostname:   hostname,
			StartedAt:  started,
			ServerTime: time.Now(),
		})
	}
}

// RegisterHealthEndpoints registers /ping and the plain /health probe
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string) {
	e.GET("/ping", NewPingHandler(serviceName, version))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
