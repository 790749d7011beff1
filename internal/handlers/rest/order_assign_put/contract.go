//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_assign_put_test
package order_assign_put

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
	AssignDrone(ctx context.Context, actor entities.Actor, orderID, droneID int64) (*entities.Order, error)
}
