package entities

import "time"

type Order struct {
	ID           int64
	CustomerID   int64
	RestaurantID int64
	PaymentID    int64
	AddressID    int64
	Items        []OrderItem
	TotalAmount  float64
	Status       OrderStatusType
	DroneID      *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderItem struct {
	DishName string
	Price    float64
	Quantity int
}

type OrderStatusType string

// Строки статусов это внешний контракт, менять нельзя.
const (
	OrderPreparing      OrderStatusType = "Preparing"
	OrderReady          OrderStatusType = "Ready"
	OrderOutForDelivery OrderStatusType = "Out for delivery"
	OrderDelivered      OrderStatusType = "Delivered"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID           *int64
	CustomerID   *int64
	RestaurantID *int64
	PaymentID    *int64
	AddressID    *int64
	Items        []OrderItem
	TotalAmount  *float64
	Status       *OrderStatusType
	DroneID      *int64
}

// OrderFilter описывает выборку заказов, nil поля не участвуют в запросе.
type OrderFilter struct {
	CustomerID    *int64
	RestaurantID  *int64
	DroneID       *int64
	Status        *OrderStatusType
	StatusNot     *OrderStatusType
	DroneAssigned *bool
}
