package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidDroneID        = errors.New("invalid drone id")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidItems          = errors.New("invalid order items")
	ErrInvalidTotalAmount    = errors.New("invalid total amount")

	ErrOrderNotFound = errors.New("order not found")
)
