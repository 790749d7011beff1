//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drone_status_patch_test
package drone_status_patch

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
	SetDroneStatus(ctx context.Context, id int64, status entities.DroneStatusType) (*entities.Drone, error)
}
