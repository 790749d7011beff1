package entities

import (
	"time"
)

// Drone представляет дрона доставки. Активный заказ дрона не хранится
// обратной ссылкой, он выводится запросом по orders.drone_id.
type Drone struct {
	ID              int64
	Code            string
	Status          DroneStatusType
	BatteryLevel    int
	MaxPayload      float64
	Location        *GeoPoint
	LastMaintenance *time.Time
	NextMaintenance *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

type DroneStatusType string

const (
	DroneAvailable   DroneStatusType = "AVAILABLE"
	DroneInDelivery  DroneStatusType = "IN_DELIVERY"
	DroneMaintenance DroneStatusType = "MAINTENANCE"
	DroneOffline     DroneStatusType = "OFFLINE"
)

const DefaultDroneStatus = DroneAvailable

func (t DroneStatusType) String() string {
	return string(t)
}

type DroneModify struct {
	ID              *int64
	Code            *string
	Status          *DroneStatusType
	BatteryLevel    *int
	MaxPayload      *float64
	Location        *GeoPoint
	LastMaintenance *time.Time
	NextMaintenance *time.Time
}

// DroneTelemetry приходит из топика drone.telemetry, все поля кроме кода опциональны.
type DroneTelemetry struct {
	Code         string
	BatteryLevel *int
	Location     *GeoPoint
}
