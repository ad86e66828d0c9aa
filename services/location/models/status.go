package models

// Status is a point-in-time read of the location service.
type Status struct {
	AuthorizationStatus     AuthorizationStatus    `json:"authorization_status"`
	AccuracyAuthorization   *AccuracyAuthorization `json:"accuracy_authorization"`
	LocationServicesEnabled bool                   `json:"location_services_enabled"`
	HeadingAvailable        bool                   `json:"heading_available"`
	Location                *Location              `json:"location"`
	MonitoredRegions        []Region               `json:"monitored_regions"`
}
