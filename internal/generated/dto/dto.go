// Package dto содержит транспортные структуры REST API.
// Имена JSON полей это внешний контракт, менять нельзя.
package dto

import "time"

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type MaintenanceSchedule struct {
	LastMaintenance *time.Time `json:"lastMaintenance,omitempty"`
	NextMaintenance *time.Time `json:"nextMaintenance,omitempty"`
}

type Drone struct {
	ID                  int64                `json:"id"`
	DroneID             string               `json:"droneId"`
	Status              string               `json:"status"`
	BatteryLevel        int                  `json:"batteryLevel"`
	MaxPayload          float64              `json:"maxPayload"`
	CurrentLocation     *GeoPoint            `json:"currentLocation,omitempty"`
	MaintenanceSchedule *MaintenanceSchedule `json:"maintenanceSchedule,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

type DroneCreate struct {
	DroneID             string               `json:"droneId"`
	Status              *string              `json:"status,omitempty"`
	BatteryLevel        int                  `json:"batteryLevel"`
	MaxPayload          float64              `json:"maxPayload"`
	CurrentLocation     *GeoPoint            `json:"currentLocation,omitempty"`
	MaintenanceSchedule *MaintenanceSchedule `json:"maintenanceSchedule,omitempty"`
}

type DroneUpdate struct {
	DroneID             *string              `json:"droneId,omitempty"`
	Status              *string              `json:"status,omitempty"`
	BatteryLevel        *int                 `json:"batteryLevel,omitempty"`
	MaxPayload          *float64             `json:"maxPayload,omitempty"`
	CurrentLocation     *GeoPoint            `json:"currentLocation,omitempty"`
	MaintenanceSchedule *MaintenanceSchedule `json:"maintenanceSchedule,omitempty"`
}

type DroneStatusUpdate struct {
	Status string `json:"status"`
}

type OrderItemDescriptor struct {
	DishName string  `json:"dishName"`
	Price    float64 `json:"price"`
}

type OrderItem struct {
	Item     OrderItemDescriptor `json:"item"`
	Quantity int                 `json:"quantity"`
}

type Order struct {
	ID              int64       `json:"id"`
	User            int64       `json:"user"`
	Restaurant      int64       `json:"restaurant"`
	PaymentID       int64       `json:"paymentId"`
	DeliveryAddress int64       `json:"deliveryAddress"`
	OrderItems      []OrderItem `json:"orderItems"`
	TotalAmount     float64     `json:"totalAmount"`
	OrderStatus     string      `json:"orderStatus"`
	Drone           *int64      `json:"drone,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type OrderCreate struct {
	Restaurant      int64       `json:"restaurant"`
	PaymentID       int64       `json:"paymentId"`
	DeliveryAddress int64       `json:"deliveryAddress"`
	OrderItems      []OrderItem `json:"orderItems"`
	TotalAmount     float64     `json:"totalAmount"`
}

type OrderStatusUpdate struct {
	OrderStatus string `json:"orderStatus"`
}

type AssignDrone struct {
	DroneID int64 `json:"droneId"`
}

type Message struct {
	Message string `json:"message"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
