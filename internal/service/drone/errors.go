package drone

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDroneID        = errors.New("invalid drone id")
	ErrInvalidCode           = errors.New("invalid drone code")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidBatteryLevel   = errors.New("invalid battery level")
	ErrInvalidMaxPayload     = errors.New("invalid max payload")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrDroneNotFound     = errors.New("drone not found")
	ErrDroneNotAvailable = errors.New("drone is not available")
	ErrConflict          = errors.New("resource already exists")
)
