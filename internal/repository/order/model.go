package order

import "time"

type OrderDB struct {
	ID           int64
	CustomerID   int64
	RestaurantID int64
	PaymentID    int64
	AddressID    int64
	Items        []byte
	TotalAmount  float64
	Status       string
	DroneID      *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderModifyDB struct {
	ID           *int64
	CustomerID   *int64
	RestaurantID *int64
	PaymentID    *int64
	AddressID    *int64
	Items        []byte
	TotalAmount  *float64
	Status       *string
	DroneID      *int64
}

// OrderItemDB это элемент JSONB колонки items.
type OrderItemDB struct {
	DishName string  `json:"dish_name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
