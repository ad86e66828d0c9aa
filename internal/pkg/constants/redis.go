package constants

// Redis key formats
const (
	KeyDeviceLocation      = "device:location:%s"      // Format: device:location:{device_id}
	KeyDeviceAuthorization = "device:authorization:%s" // Format: device:authorization:{device_id}
	KeyDeviceRegions       = "device:regions:%s"       // Format: device:regions:{device_id}
	KeyDeviceGeo           = "devices:geo"             // Geo set of the last position of every device
)
