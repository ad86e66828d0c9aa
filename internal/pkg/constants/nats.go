package constants

// NATS subjects for relayed location service actions
const (
	// SubjectActionPrefix prefixes every relayed action: location.action.{device_id}.{action_type}
	SubjectActionPrefix = "location.action"
	// SubjectLocationUpdated carries each fix keyed by area: location.updated.{device_id}.{geohash}
	SubjectLocationUpdated = "location.updated"
)
