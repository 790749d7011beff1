package drone

import (
	"strings"

	"fleet/internal/entities"
)

func isValidCode(code string) bool {
	return strings.TrimSpace(code) != ""
}

func isValidStatus(status string) bool {
	switch entities.DroneStatusType(status) {
	case entities.DroneAvailable, entities.DroneInDelivery,
		entities.DroneMaintenance, entities.DroneOffline:
		return true
	default:
		return false
	}
}

func isValidBatteryLevel(level int) bool {
	return level >= 0 && level <= 100
}

func isValidMaxPayload(payload float64) bool {
	return payload > 0
}

func isValidLocation(point entities.GeoPoint) bool {
	if point.Latitude < -90 || point.Latitude > 90 {
		return false
	}
	return point.Longitude >= -180 && point.Longitude <= 180
}
