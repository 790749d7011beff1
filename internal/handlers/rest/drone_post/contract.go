//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drone_post_test
package drone_post

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
	CreateDrone(ctx context.Context, droneModify entities.DroneModify) (*entities.Drone, error)
}
