package drone

import "time"

type DroneDB struct {
	ID              int64
	Code            string
	Status          string
	BatteryLevel    int
	MaxPayload      float64
	Latitude        *float64
	Longitude       *float64
	LastMaintenance *time.Time
	NextMaintenance *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DroneModifyDB struct {
	ID              *int64
	Code            *string
	Status          *string
	BatteryLevel    *int
	MaxPayload      *float64
	Latitude        *float64
	Longitude       *float64
	LastMaintenance *time.Time
	NextMaintenance *time.Time
}
