package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Logger   LoggerConfig
	Location LocationConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// LocationConfig contains location daemon specific configuration
type LocationConfig struct {
	DeviceID         string  `json:"device_id"`
	RouteFile        string  `json:"route_file"`        // JSON route replayed by the simulator
	ReplayIntervalMs int     `json:"replay_interval_ms"` // Delay between replayed fixes
	GeohashPrecision uint    `json:"geohash_precision"`  // Characters of geohash in NATS subjects
	GrantStatus      string  `json:"grant_status"`       // Authorization granted by the simulator
	SnapshotTTLSec   int     `json:"snapshot_ttl_sec"`
	DesiredAccuracy  float64 `json:"desired_accuracy"`
	DistanceFilter   float64 `json:"distance_filter"`
}
