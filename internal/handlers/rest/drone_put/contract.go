//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drone_put_test
package drone_put

import (
	"context"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateDrone(ctx context.Context, droneModify entities.DroneModify) (*entities.Drone, error)
}
